package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/dbmongo"
)

// GridFSDelegate keeps assets in the entity store's GridFS bucket, keyed by
// public id as the stored filename. Duration stays zero here, the bucket
// does not probe media.
type GridFSDelegate struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewGridFSDelegate(mongoClient *dbmongo.MongoClient, baseURL string) *GridFSDelegate {
	return &GridFSDelegate{bucket: mongoClient.GridFS, baseURL: baseURL}
}

func (d *GridFSDelegate) Store(ctx context.Context, localPath, desiredPublicID string) (*Asset, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open staged file: %w", err)
	}
	defer file.Close()

	publicID := desiredPublicID
	if publicID == "" {
		publicID = filepath.Base(localPath)
	}

	// overwrite-in-place: drop any object already stored under this id
	if err := d.deleteByName(ctx, publicID); err != nil {
		return nil, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(localPath))
	metadata := bson.M{
		"kind":        DetectKind(mimeType).String(),
		"mime_type":   mimeType,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := d.bucket.OpenUploadStream(publicID, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	if _, err := io.Copy(stream, file); err != nil {
		stream.Close()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &Asset{URL: d.urlFor(publicID), PublicID: publicID}, nil
}

func (d *GridFSDelegate) Remove(ctx context.Context, publicID string, kind Kind) error {
	return d.deleteByName(ctx, publicID)
}

func (d *GridFSDelegate) Rename(ctx context.Context, fromID, toID string) (*Asset, error) {
	fileID, err := d.findByName(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if err := d.bucket.Rename(fileID, toID); err != nil {
		return nil, fmt.Errorf("rename failed: %w", err)
	}
	return &Asset{URL: d.urlFor(toID), PublicID: toID}, nil
}

func (d *GridFSDelegate) findByName(ctx context.Context, publicID string) (primitive.ObjectID, error) {
	cursor, err := d.bucket.Find(bson.M{"filename": publicID})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("lookup %q: %w", publicID, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return primitive.NilObjectID, fmt.Errorf("object %q not found", publicID)
	}
	var file struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.Decode(&file); err != nil {
		return primitive.NilObjectID, fmt.Errorf("decode %q: %w", publicID, err)
	}
	return file.ID, nil
}

func (d *GridFSDelegate) deleteByName(ctx context.Context, publicID string) error {
	cursor, err := d.bucket.Find(bson.M{"filename": publicID})
	if err != nil {
		return fmt.Errorf("lookup %q: %w", publicID, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("decode %q: %w", publicID, err)
		}
		if err := d.bucket.Delete(file.ID); err != nil {
			return fmt.Errorf("delete %q: %w", publicID, err)
		}
	}
	return nil
}

func (d *GridFSDelegate) urlFor(publicID string) string {
	return d.baseURL + "/media/" + publicID
}
