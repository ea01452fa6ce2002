package archive

import (
	"context"
	"fmt"

	"encore.app/billing/receipt"
	"encore.app/internal/config"
)

// Archiver stores one text object per bill.
type Archiver struct {
	factory WriterFactory
	cfg     config.Archive
}

func NewArchiver(factory WriterFactory, cfg config.Archive) *Archiver {
	return &Archiver{factory: factory, cfg: cfg}
}

// Store renders r into the configured bucket and returns the object location.
func (a *Archiver) Store(ctx context.Context, r receipt.Receipt) (string, error) {
	key := a.cfg.ObjectKey(r.BillID)
	w, err := a.factory.NewWriter(ctx, a.cfg.Bucket, key)
	if err != nil {
		return "", err
	}
	if err := receipt.Render(w, r); err != nil {
		return "", fmt.Errorf("render receipt %s: %w", r.BillID, err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return "s3://" + a.cfg.Bucket + "/" + key, nil
}
