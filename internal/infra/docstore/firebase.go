package docstore

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "smartfit/internal/delivery/context"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
)

// firebaseStore implements Store on Firebase Realtime Database.
type firebaseStore struct {
	client *db.Client
	root   string
	logger *slog.Logger
}

// NewFirebaseStore connects to the Realtime Database of app. When databaseURL
// is empty the app's default database is used.
func NewFirebaseStore(ctx context.Context, app *firebase.App, databaseURL, root string, logger *slog.Logger) (Store, error) {
	if app == nil {
		return nil, errors.New("firebase app is not configured")
	}

	var (
		client *db.Client
		err    error
	)
	if databaseURL != "" {
		client, err = app.DatabaseWithURL(ctx, databaseURL)
	} else {
		client, err = app.Database(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return &firebaseStore{client: client, root: root, logger: logger}, nil
}

func (s *firebaseStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *firebaseStore) ref(path string) *db.Ref {
	return s.client.NewRef(Join(s.root, path))
}

// remoteError logs a failed call and converts it to an AppError carrying the store's text.
func (s *firebaseStore) remoteError(ctx context.Context, op, path string, err error) error {
	s.log(ctx).Error("Realtime Database call failed",
		slog.String("op", op),
		slog.String("path", path),
		slog.Any("error", err),
	)

	return domainerrors.NewDatabaseExecuteError(err, op+" "+path)
}

func (s *firebaseStore) Create(ctx context.Context, path, ownerID string, payload any) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.ref(path).Set(ctx, payload); err != nil {
		return s.remoteError(ctx, "create", path, err)
	}

	s.log(ctx).Debug("Document created", slog.String("path", path), slog.String("owner_id", ownerID))

	return nil
}

func (s *firebaseStore) Read(ctx context.Context, path string, dest any) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var raw json.RawMessage
	if err := s.ref(path).Get(ctx, &raw); err != nil {
		return s.remoteError(ctx, "read", path, err)
	}
	if IsNull(raw) {
		return ErrNotFound
	}

	return errors.WithStack(json.Unmarshal(raw, dest))
}

func (s *firebaseStore) Update(ctx context.Context, path string, patch map[string]any) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if len(patch) == 0 {
		return nil
	}
	for key := range patch {
		if err := ValidatePath(key); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	if err := s.ref(path).Update(ctx, patch); err != nil {
		return s.remoteError(ctx, "update", path, err)
	}

	return nil
}

func (s *firebaseStore) Delete(ctx context.Context, path string) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.ref(path).Delete(ctx); err != nil {
		return s.remoteError(ctx, "delete", path, err)
	}

	return nil
}

func (s *firebaseStore) Transaction(ctx context.Context, path string, fn TxFunc) error {
	if err := ValidatePath(path); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	// The callback may run more than once when the node changes concurrently.
	var fnErr error
	err := s.ref(path).Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		result, err := fn(node)
		fnErr = err

		return result, err
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return s.remoteError(ctx, "transaction", path, err)
	}

	return nil
}

func (s *firebaseStore) Close() error {
	return nil
}
