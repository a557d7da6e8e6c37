package domain

// Category is a created category record as delivered by the data store.
type Category struct {
	Id      string `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Created int64  `bson:"created" json:"created,omitempty"`
}
