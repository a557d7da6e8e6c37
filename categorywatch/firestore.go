package categorywatch

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/talkdeck/talkdeck-push-server/domain"
)

func firestoreWatcher(fbApp *firebase.App, collection string) watchFunc {
	return func(ctx context.Context, onCreate func(category domain.Category)) error {
		client, err := fbApp.Firestore(ctx)
		if err != nil {
			return err
		}
		defer func() {
			_ = client.Close()
		}()
		it := client.Collection(collection).Snapshots(ctx)
		defer it.Stop()
		return watchSnapshots(ctx, it.Next, onCreate)
	}
}

// watchSnapshots skips the first snapshot, it lists documents that existed before the listener started.
func watchSnapshots(ctx context.Context, next func() (*firestore.QuerySnapshot, error), onCreate func(category domain.Category)) error {
	initial := true
	for {
		snap, err := next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}
		if initial {
			initial = false
			continue
		}
		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}
			if category, ok := categoryFromDoc(change.Doc); ok {
				onCreate(category)
			}
		}
	}
}

func categoryFromDoc(doc *firestore.DocumentSnapshot) (domain.Category, bool) {
	if doc == nil || doc.Ref == nil {
		return domain.Category{}, false
	}
	name, _ := doc.Data()["name"].(string)
	return domain.Category{Id: doc.Ref.ID, Name: name}, true
}
