// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package image stores captured fridge photographs in Cloud Storage so a
// scan can be revisited after the fact.
package image

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

type Writer struct {
	storage *storage.Client
	bucket  string
}

func NewWriter(storage *storage.Client, bucket string) *Writer {
	return &Writer{
		storage: storage,
		bucket:  bucket,
	}
}

// WriteJPEG stores the image under path and returns its public URL.
func (w *Writer) WriteJPEG(ctx context.Context, path string, data []byte) (string, error) {
	wc := w.storage.Bucket(w.bucket).Object(path).NewWriter(ctx)
	wc.ContentType = "image/jpeg"
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("image: writing capture: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("image: finalizing capture: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", w.bucket, path), nil
}
