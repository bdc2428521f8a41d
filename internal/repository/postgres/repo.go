package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/vetcare/chat-service/internal/config"
	"github.com/vetcare/chat-service/internal/model"
	"github.com/vetcare/chat-service/internal/pkg/tx"
)

const (
	vetsTable     = "vets"
	ownersTable   = "owners"
	threadsTable  = "threads"
	messagesTable = "messages"
)

var threadColumns = []string{
	"t.id",
	"t.vet_id",
	"t.owner_id",
	"t.initiated_by",
	"t.pending",
	"t.windows",
	"t.status",
	"t.last_message_at",
	"t.created_at",
	"t.updated_at",
}

var messageColumns = []string{
	"id",
	"thread_id",
	"author_role",
	"author_user_id",
	"text",
	"kind",
	"sent_at",
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *sqlx.DB) *Repository {
	return &Repository{connection: db}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction carried by ctx, or the pool when there is none.
func (r *Repository) Chk(ctx context.Context) tx.Querier {
	if t, ok := tx.Extract(ctx); ok {
		return t
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := tx.Extract(ctx); ok {
		return cb(ctx)
	}

	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := cb(tx.Inject(ctx, t)); err != nil {
		if rbErr := t.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := t.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *Repository) getProfile(ctx context.Context, table string, userID uuid.UUID) (*model.Profile, error) {
	query, args, err := sq.Select("id", "user_id", "name", "updated_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var profile model.Profile
	err = r.Chk(ctx).GetContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s profile: %v", table, err)
	}

	return &profile, nil
}

func (r *Repository) GetVetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return r.getProfile(ctx, vetsTable, userID)
}

func (r *Repository) GetOwnerByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return r.getProfile(ctx, ownersTable, userID)
}

func (r *Repository) exists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From(table).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var found bool
	err = r.Chk(ctx).GetContext(ctx, &found, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %v", table, err)
	}

	return found, nil
}

func (r *Repository) VetExists(ctx context.Context, vetID uuid.UUID) (bool, error) {
	return r.exists(ctx, vetsTable, vetID)
}

func (r *Repository) OwnerExists(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	return r.exists(ctx, ownersTable, ownerID)
}

func (r *Repository) upsertProfile(ctx context.Context, table string, profile model.Profile) error {
	query, args, err := sq.Insert(table).
		Columns("id", "user_id", "name", "updated_at").
		Values(profile.ID, profile.UserID, profile.Name, profile.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, name = EXCLUDED.name, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert %s profile: %v", table, err)
	}

	return nil
}

func (r *Repository) UpsertVet(ctx context.Context, profile model.Profile) error {
	return r.upsertProfile(ctx, vetsTable, profile)
}

func (r *Repository) UpsertOwner(ctx context.Context, profile model.Profile) error {
	return r.upsertProfile(ctx, ownersTable, profile)
}

// upsertThread inserts the pair's thread or applies onConflict to the existing one.
func (r *Repository) upsertThread(ctx context.Context, vetID, ownerID uuid.UUID, initiatedBy model.Role, pending bool, status model.Status, now time.Time, onConflict string) (uuid.UUID, error) {
	query, args, err := sq.Insert(threadsTable).
		Columns("id", "vet_id", "owner_id", "initiated_by", "pending", "windows", "status", "created_at", "updated_at").
		Values(uuid.New(), vetID, ownerID, initiatedBy, pending, model.Windows{}, status, now, now).
		Suffix("ON CONFLICT (vet_id, owner_id) DO UPDATE SET "+onConflict+", updated_at = EXCLUDED.updated_at RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var threadID uuid.UUID
	err = r.Chk(ctx).GetContext(ctx, &threadID, query, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert thread: %v", err)
	}

	return threadID, nil
}

func (r *Repository) UpsertOwnerRequest(ctx context.Context, vetID, ownerID uuid.UUID, now time.Time) (uuid.UUID, error) {
	return r.upsertThread(ctx, vetID, ownerID, model.RoleOwner, true, model.StatusPending, now,
		"pending = TRUE, status = CASE WHEN threads.initiated_by = 'vet' THEN 'active' ELSE 'pending' END")
}

func (r *Repository) UpsertVetStart(ctx context.Context, vetID, ownerID uuid.UUID, now time.Time) (uuid.UUID, error) {
	return r.upsertThread(ctx, vetID, ownerID, model.RoleVet, false, model.StatusActive, now,
		"pending = FALSE, status = 'active'")
}

func (r *Repository) GetThread(ctx context.Context, threadID uuid.UUID) (*model.Thread, error) {
	query, args, err := sq.Select(threadColumns...).
		From(threadsTable + " t").
		Where(sq.Eq{"t.id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thread model.Thread
	err = r.Chk(ctx).GetContext(ctx, &thread, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %v", err)
	}

	return &thread, nil
}

// AppendWindow flips the thread to active and appends the window in a single statement.
func (r *Repository) AppendWindow(ctx context.Context, threadID uuid.UUID, window model.Window) error {
	appended, err := model.Windows{window}.Value()
	if err != nil {
		return err
	}

	query, args, err := sq.Update(threadsTable).
		Set("pending", false).
		Set("status", model.StatusActive).
		Set("windows", sq.Expr("windows || ?::jsonb", appended)).
		Set("last_message_at", window.From).
		Set("updated_at", window.From).
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *Repository) DeclineThread(ctx context.Context, threadID uuid.UUID, now time.Time) error {
	query, args, err := sq.Update(threadsTable).
		Set("pending", false).
		Set("status", model.StatusExpired).
		Set("updated_at", now).
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *Repository) TouchLastMessage(ctx context.Context, threadID uuid.UUID, at time.Time) error {
	query, args, err := sq.Update(threadsTable).
		Set("last_message_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": threadID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execOne(ctx, query, args...)
}

func (r *Repository) execOne(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update thread: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *Repository) getThreads(ctx context.Context, partyColumn, counterpartJoin string, profileID uuid.UUID) (model.ThreadPreviewList, error) {
	query, args, err := sq.Select(append(threadColumns, "c.name AS counterpart_name")...).
		From(threadsTable + " t").
		Join(counterpartJoin).
		Where(sq.Eq{partyColumn: profileID}).
		OrderBy("t.last_message_at DESC NULLS LAST", "t.updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var threads model.ThreadPreviewList
	err = r.Chk(ctx).SelectContext(ctx, &threads, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get threads: %v", err)
	}

	return threads, nil
}

func (r *Repository) GetVetThreads(ctx context.Context, vetID uuid.UUID) (model.ThreadPreviewList, error) {
	return r.getThreads(ctx, "t.vet_id", "owners c ON c.id = t.owner_id", vetID)
}

func (r *Repository) GetOwnerThreads(ctx context.Context, ownerID uuid.UUID) (model.ThreadPreviewList, error) {
	return r.getThreads(ctx, "t.owner_id", "vets c ON c.id = t.vet_id", ownerID)
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query := sq.Insert(messagesTable).
		Columns(messageColumns...).
		Values(message.ID, message.ThreadID, message.AuthorRole, message.AuthorUserID, message.Text, message.Kind, message.SentAt).
		PlaceholderFormat(sq.Dollar)

	rawQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, rawQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// GetThreadMessages returns the newest messages first.
func (r *Repository) GetThreadMessages(ctx context.Context, threadID uuid.UUID, before *time.Time, limit int) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"thread_id": threadID}).
		OrderBy("sent_at DESC", "id DESC").
		Limit(uint64(limit))

	if before != nil {
		queryBuilder = queryBuilder.Where(sq.Lt{"sent_at": *before})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %v", err)
	}

	return messages, nil
}
