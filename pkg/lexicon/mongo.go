package lexicon

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// Collection names expected in a Mongo-backed word bank.
const (
	mongoNouns = "nouns"
	mongoVerbs = "verbs"
)

// LoadMongo reads a word bank from a MongoDB database. Each lexical class
// lives in its own collection ("nouns", "verbs") with documents matching the
// Item shape. An absent or empty collection fails descriptively, mirroring
// the file loader's missing-key behavior.
func LoadMongo(ctx context.Context, uri, database string) (*Bank, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLexiconLoad, err, "connecting to %s", uri)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(database)

	nouns, err := readCollection(ctx, db, mongoNouns)
	if err != nil {
		return nil, err
	}
	verbs, err := readCollection(ctx, db, mongoVerbs)
	if err != nil {
		return nil, err
	}

	b := &Bank{Nouns: nouns, Verbs: verbs}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// readCollection fetches every document in the named collection.
func readCollection(ctx context.Context, db *mongo.Database, name string) ([]Item, error) {
	cur, err := db.Collection(name).Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLexiconLoad, err, "querying %q collection", name)
	}
	defer cur.Close(ctx)

	var items []Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLexiconLoad, err, "decoding %q collection", name)
	}
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeLexiconLoad, "word bank collection %q is missing or empty", name)
	}
	return items, nil
}
