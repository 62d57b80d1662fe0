package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/rana-danish-se/naqvix-server/models"
)

var (
	// ErrMediaRequired is returned before any gateway call when a kind that
	// requires media is created without one.
	ErrMediaRequired = errors.New("at least one image is required")
	// ErrTooManyFiles is returned before any gateway call when the submission
	// would exceed the kind's media limit.
	ErrTooManyFiles = errors.New("too many images")
)

// Policy fixes the media rules of one entity kind.
type Policy struct {
	// Folder prefixes every object key uploaded for this kind.
	Folder string
	// MaxFiles bounds the media list length. Zero means unlimited.
	MaxFiles int
	// RequireOnCreate demands at least one image on the create path. Updates
	// may still reduce the list to zero; that asymmetry matches how the admin
	// frontend has always behaved and is kept on purpose.
	RequireOnCreate bool
}

// Manager runs the media lifecycle of one entity kind against a Gateway.
// It never touches the database: controllers persist the list it returns,
// and only after every upload has succeeded.
type Manager struct {
	gw     Gateway
	policy Policy
	log    *zap.SugaredLogger
}

func NewManager(gw Gateway, policy Policy, log *zap.SugaredLogger) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{gw: gw, policy: policy, log: log}
}

// CollectUploads validates and uploads the submitted files for a create.
// Validation happens before any gateway call. On a mid-batch failure the
// already uploaded objects are left behind: the record was never written, so
// nothing references them, and there is no rollback path (accepted orphan
// risk, surfaced only in logs).
func (m *Manager) CollectUploads(ctx context.Context, files []*multipart.FileHeader) (models.MediaList, error) {
	if m.policy.RequireOnCreate && len(files) == 0 {
		return nil, ErrMediaRequired
	}
	if m.policy.MaxFiles > 0 && len(files) > m.policy.MaxFiles {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(files), m.policy.MaxFiles)
	}
	return m.uploadAll(ctx, files)
}

// Reconcile applies an update submission to the record's current media:
// refs whose URL is in the keep-list survive, the rest are deleted from the
// store best-effort, and freshly submitted files are uploaded and appended.
// The returned list is kept (original order) followed by new uploads
// (submission order). An upload failure aborts the whole operation; deletions
// already applied are not rolled back.
func (m *Manager) Reconcile(ctx context.Context, existing models.MediaList, keepRaw []string, files []*multipart.FileHeader) (models.MediaList, error) {
	kept, stale := Diff(existing, ParseKeepList(keepRaw))
	if m.policy.MaxFiles > 0 && len(kept)+len(files) > m.policy.MaxFiles {
		return nil, fmt.Errorf("%w: keeping %d and adding %d, limit %d",
			ErrTooManyFiles, len(kept), len(files), m.policy.MaxFiles)
	}

	for _, ref := range stale {
		if err := m.gw.Delete(ctx, ref.StorageKey); err != nil {
			m.log.Warnw("stale media delete failed", "key", ref.StorageKey, "err", err)
		}
	}

	added, err := m.uploadAll(ctx, files)
	if err != nil {
		return nil, err
	}
	return append(kept, added...), nil
}

// CascadeDelete removes every attached object ahead of record deletion.
// Failures are logged and counted, never fatal: a dangling remote object is
// preferable to a delete endpoint that reports failure after the record is
// already half gone.
func (m *Manager) CascadeDelete(ctx context.Context, existing models.MediaList) int {
	failed := 0
	for _, ref := range existing {
		if err := m.gw.Delete(ctx, ref.StorageKey); err != nil {
			failed++
			m.log.Warnw("cascade media delete failed", "key", ref.StorageKey, "err", err)
		}
	}
	return failed
}

func (m *Manager) uploadAll(ctx context.Context, files []*multipart.FileHeader) (models.MediaList, error) {
	out := make(models.MediaList, 0, len(files))
	for _, fh := range files {
		ref, err := m.uploadOne(ctx, fh)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		out = append(out, ref)
	}
	return out, nil
}

func (m *Manager) uploadOne(ctx context.Context, fh *multipart.FileHeader) (models.MediaRef, error) {
	f, err := fh.Open()
	if err != nil {
		return models.MediaRef{}, err
	}
	defer f.Close()
	return m.gw.Upload(ctx, m.policy.Folder, fh.Filename, fh.Header.Get("Content-Type"), f, fh.Size)
}
