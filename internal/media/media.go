// Package media is the image-upload collaborator boundary. Core code
// depends only on ImageStore; the GridFS adapter below is the concrete
// implementation and everything else about file serving stays outside
// this service.
package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageStore accepts image bytes for a named target and hands back an
// opaque reference that can later resolve to the bytes again.
type ImageStore interface {
	Upload(ctx context.Context, name string, r io.Reader) (ref string, err error)
	Download(ctx context.Context, ref string) ([]byte, error)
}

// GridFSStore stores images in MongoDB GridFS.
type GridFSStore struct {
	db *mongo.Database
}

// NewGridFSStore connects to MongoDB and pings it.
func NewGridFSStore(ctx context.Context, uri, dbName string) (*GridFSStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &GridFSStore{db: client.Database(dbName)}, nil
}

func (s *GridFSStore) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return "", err
	}
	stream, err := bucket.OpenUploadStream(name)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	if _, err := io.Copy(stream, r); err != nil {
		return "", err
	}
	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

func (s *GridFSStore) Download(ctx context.Context, ref string) ([]byte, error) {
	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, fmt.Errorf("bad image ref: %w", err)
	}
	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	return io.ReadAll(stream)
}
