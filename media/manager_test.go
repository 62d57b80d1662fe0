package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"testing"

	"github.com/rana-danish-se/naqvix-server/models"
)

type fakeGateway struct {
	uploads     int
	deletes     []string
	failUploadN int   // fail the Nth upload (1-based), 0 = never
	deleteErr   error // returned by every Delete
}

func (f *fakeGateway) Upload(_ context.Context, folder, filename, _ string, r io.Reader, _ int64) (models.MediaRef, error) {
	f.uploads++
	if f.failUploadN > 0 && f.uploads == f.failUploadN {
		return models.MediaRef{}, errors.New("provider rejected upload")
	}
	_, _ = io.Copy(io.Discard, r)
	key := fmt.Sprintf("%s/obj-%d", folder, f.uploads)
	return models.MediaRef{URL: "https://cdn.local/" + key, StorageKey: key}, nil
}

func (f *fakeGateway) Delete(_ context.Context, storageKey string) error {
	f.deletes = append(f.deletes, storageKey)
	return f.deleteErr
}

func formFiles(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["images"]
}

func TestCollectUploadsHappyPath(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "blogs", MaxFiles: 4, RequireOnCreate: true}, nil)

	refs, err := m.CollectUploads(context.Background(), formFiles(t, "one.jpg", "two.png"))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	for _, ref := range refs {
		if ref.URL == "" || ref.StorageKey == "" {
			t.Fatalf("ref missing url or key: %+v", ref)
		}
	}
}

func TestCollectUploadsRequiredWithoutFiles(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "blogs", MaxFiles: 4, RequireOnCreate: true}, nil)

	if _, err := m.CollectUploads(context.Background(), nil); !errors.Is(err, ErrMediaRequired) {
		t.Fatalf("expected ErrMediaRequired, got %v", err)
	}
	if gw.uploads != 0 {
		t.Fatalf("no gateway call may happen on validation failure, got %d", gw.uploads)
	}
}

func TestCollectUploadsOptionalWithoutFiles(t *testing.T) {
	m := NewManager(&fakeGateway{}, Policy{Folder: "events", MaxFiles: 10}, nil)
	refs, err := m.CollectUploads(context.Background(), nil)
	if err != nil {
		t.Fatalf("optional media create should pass with zero files: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected empty list, got %d", len(refs))
	}
}

func TestCollectUploadsOverLimit(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "team", MaxFiles: 1, RequireOnCreate: true}, nil)

	_, err := m.CollectUploads(context.Background(), formFiles(t, "a.jpg", "b.jpg"))
	if !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
	if gw.uploads != 0 {
		t.Fatalf("limit check must run before any upload, got %d uploads", gw.uploads)
	}
}

func TestCollectUploadsMidBatchFailure(t *testing.T) {
	gw := &fakeGateway{failUploadN: 2}
	m := NewManager(gw, Policy{Folder: "gallery", MaxFiles: 5, RequireOnCreate: true}, nil)

	_, err := m.CollectUploads(context.Background(), formFiles(t, "a.jpg", "b.jpg", "c.jpg"))
	if err == nil {
		t.Fatal("expected upload failure to abort")
	}
	// the first object is orphaned on purpose; no delete is attempted
	if len(gw.deletes) != 0 {
		t.Fatalf("no rollback deletes expected, got %v", gw.deletes)
	}
	if gw.uploads != 2 {
		t.Fatalf("upload loop should stop at the failure, got %d calls", gw.uploads)
	}
}

func TestReconcileKeepAndAdd(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "blogs", MaxFiles: 4, RequireOnCreate: true}, nil)

	existing := models.MediaList{
		{URL: "u-a", StorageKey: "k-a"},
		{URL: "u-b", StorageKey: "k-b"},
		{URL: "u-c", StorageKey: "k-c"},
	}
	final, err := m.Reconcile(context.Background(), existing, []string{`["u-b","u-c"]`}, formFiles(t, "d.jpg"))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !reflect.DeepEqual(final.URLs()[:2], []string{"u-b", "u-c"}) {
		t.Fatalf("kept media must come first in original order, got %v", final.URLs())
	}
	if len(final) != 3 {
		t.Fatalf("expected 2 kept + 1 new, got %d", len(final))
	}
	if !reflect.DeepEqual(gw.deletes, []string{"k-a"}) {
		t.Fatalf("exactly one delete for the dropped ref expected, got %v", gw.deletes)
	}
}

func TestReconcileDeleteFailureDoesNotAbort(t *testing.T) {
	gw := &fakeGateway{deleteErr: errors.New("object store down")}
	m := NewManager(gw, Policy{Folder: "blogs", MaxFiles: 4}, nil)

	existing := models.MediaList{{URL: "u-a", StorageKey: "k-a"}}
	final, err := m.Reconcile(context.Background(), existing, nil, nil)
	if err != nil {
		t.Fatalf("delete failures must be swallowed, got %v", err)
	}
	if len(final) != 0 {
		t.Fatalf("expected empty final list, got %v", final.URLs())
	}
}

func TestReconcileUploadFailureAborts(t *testing.T) {
	gw := &fakeGateway{failUploadN: 1}
	m := NewManager(gw, Policy{Folder: "blogs", MaxFiles: 4}, nil)

	existing := models.MediaList{{URL: "u-a", StorageKey: "k-a"}}
	_, err := m.Reconcile(context.Background(), existing, nil, formFiles(t, "new.jpg"))
	if err == nil {
		t.Fatal("expected abort on upload failure")
	}
	// the stale delete happened before the failed upload and stays applied
	if !reflect.DeepEqual(gw.deletes, []string{"k-a"}) {
		t.Fatalf("stale delete should have run, got %v", gw.deletes)
	}
}

func TestReconcileUpdateMayReachZero(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "gallery", MaxFiles: 5, RequireOnCreate: true}, nil)

	existing := models.MediaList{{URL: "u-a", StorageKey: "k-a"}}
	final, err := m.Reconcile(context.Background(), existing, nil, nil)
	if err != nil {
		t.Fatalf("updates may drop to zero media even when create requires one: %v", err)
	}
	if len(final) != 0 {
		t.Fatalf("expected zero media, got %v", final.URLs())
	}
}

func TestReconcileOverLimit(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "blogs", MaxFiles: 2}, nil)

	existing := models.MediaList{
		{URL: "u-a", StorageKey: "k-a"},
		{URL: "u-b", StorageKey: "k-b"},
	}
	_, err := m.Reconcile(context.Background(), existing, []string{"u-a", "u-b"}, formFiles(t, "c.jpg"))
	if !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
	if gw.uploads != 0 || len(gw.deletes) != 0 {
		t.Fatalf("limit check must precede gateway calls, uploads=%d deletes=%v", gw.uploads, gw.deletes)
	}
}

func TestCascadeDelete(t *testing.T) {
	gw := &fakeGateway{}
	m := NewManager(gw, Policy{Folder: "gallery"}, nil)

	refs := models.MediaList{
		{URL: "u-a", StorageKey: "k-a"},
		{URL: "u-b", StorageKey: "k-b"},
		{URL: "u-c", StorageKey: "k-c"},
	}
	if failed := m.CascadeDelete(context.Background(), refs); failed != 0 {
		t.Fatalf("unexpected failures: %d", failed)
	}
	if len(gw.deletes) != 3 {
		t.Fatalf("one delete per attached ref expected, got %v", gw.deletes)
	}

	gw = &fakeGateway{deleteErr: errors.New("gone away")}
	m = NewManager(gw, Policy{Folder: "gallery"}, nil)
	if failed := m.CascadeDelete(context.Background(), refs); failed != 3 {
		t.Fatalf("expected all 3 counted as failed, got %d", failed)
	}
}
