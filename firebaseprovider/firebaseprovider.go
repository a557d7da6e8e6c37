package firebaseprovider

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/anyproto/any-sync/app"
	"google.golang.org/api/option"
)

const CName = "push.firebase"

type Config struct {
	ProjectId       string `yaml:"projectId"`
	CredentialsFile string `yaml:"credentialsFile"`
}

type configSource interface {
	GetFirebase() Config
}

func New() FirebaseProvider {
	return new(firebaseProvider)
}

// FirebaseProvider owns the firebase app shared by the messaging gateway and the firestore listener.
type FirebaseProvider interface {
	App() *firebase.App
	app.Component
}

type firebaseProvider struct {
	fbApp *firebase.App
}

func (f *firebaseProvider) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetFirebase()
	var opts []option.ClientOption
	if conf.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.CredentialsFile))
	}
	var fbConf *firebase.Config
	if conf.ProjectId != "" {
		fbConf = &firebase.Config{ProjectID: conf.ProjectId}
	}
	f.fbApp, err = firebase.NewApp(context.Background(), fbConf, opts...)
	return
}

func (f *firebaseProvider) Name() (name string) {
	return CName
}

func (f *firebaseProvider) App() *firebase.App {
	return f.fbApp
}
