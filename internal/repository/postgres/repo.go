package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
)

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

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) GetStreamLeaves(ctx context.Context, streamIDs []string) ([]model.StreamLeaf, error) {
	query, args, err := sq.Select("stream_id", "id AS message_id").
		Options("DISTINCT ON (stream_id)").
		From("messages").
		Where(sq.Expr("stream_id = ANY(?::uuid[])", pq.Array(streamIDs))).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("stream_id", "sent_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var leaves []model.StreamLeaf
	err = r.Chk(ctx).SelectContext(ctx, &leaves, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream leaves: %v", err)
	}

	return leaves, nil
}

func (r *Repository) GetMessagesTreeInfo(ctx context.Context, messageIDs []string) ([]model.MessageTreeRow, error) {
	query, args, err := sq.Select(
		"m.id",
		"s.id AS stream_id",
		"m.parent_id",
		"ARRAY(SELECT c.id::text FROM messages c WHERE c.parent_id = m.id AND c.deleted_at IS NULL ORDER BY c.sent_at, c.id) AS child_ids",
	).
		From("messages m").
		LeftJoin("streams s ON s.id = m.stream_id").
		Where(sq.Expr("m.id = ANY(?::uuid[])", pq.Array(messageIDs))).
		Where(sq.Eq{"m.deleted_at": nil}).
		OrderBy("m.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.MessageTreeRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages tree info: %v", err)
	}

	return rows, nil
}

func (r *Repository) GetChatFacts(ctx context.Context, streamIDs, messageIDs []string) ([]model.ChatFactsRow, error) {
	if streamIDs == nil {
		streamIDs = []string{}
	}
	if messageIDs == nil {
		messageIDs = []string{}
	}

	leaf := "LEFT JOIN LATERAL (" +
		"SELECT lm.id, lm.parent_id, lm.content, lm.sender_id FROM messages lm " +
		"WHERE lm.stream_id = s.id AND lm.deleted_at IS NULL " +
		"ORDER BY lm.sent_at DESC, lm.id DESC LIMIT 1" +
		") leaf ON true"

	query, args, err := sq.Select(
		"s.id AS stream_id",
		"EXISTS (SELECT 1 FROM stream_members sm JOIN users u ON u.id = sm.user_id "+
			"WHERE sm.stream_id = s.id AND sm.left_at IS NULL AND u.is_bot) AS has_bot",
		"leaf.id AS last_message_id",
		"leaf.parent_id AS last_parent_id",
		"leaf.content AS last_content",
		"leaf.sender_id AS last_sender_id",
	).
		Column(sq.Expr(
			"ARRAY(SELECT mm.id::text FROM messages mm WHERE mm.stream_id = s.id AND mm.id = ANY(?::uuid[]) ORDER BY mm.id) AS matched_message_ids",
			pq.Array(messageIDs),
		)).
		From("streams s").
		JoinClause(leaf).
		Where(sq.Or{
			sq.Expr("s.id = ANY(?::uuid[])", pq.Array(streamIDs)),
			sq.Expr("EXISTS (SELECT 1 FROM messages fm WHERE fm.stream_id = s.id AND fm.id = ANY(?::uuid[]))", pq.Array(messageIDs)),
		}).
		OrderBy("s.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.ChatFactsRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat facts: %v", err)
	}

	return rows, nil
}

// LockStream locks the stream row until the surrounding transaction ends. Every batch writer
// takes it before reading branch info, so writers of one stream are serialized.
func (r *Repository) LockStream(ctx context.Context, streamID string) error {
	query, args, err := sq.Select("id").
		From("streams").
		Where(sq.Eq{"id": streamID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var lockedID string
	err = r.Chk(ctx).GetContext(ctx, &lockedID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to lock stream %s: %w", streamID, model.ErrStreamNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to lock stream: %v", err)
	}

	return nil
}

// ApplyTreeOps writes a tree operation bundle. Every create chain is flattened parent-first
// into one multi-row insert; foreign keys are checked at statement end. createOrder lists the
// created ids in creation order and fixes their sent_at, so the last one becomes the stream leaf.
func (r *Repository) ApplyTreeOps(ctx context.Context, streamID string, ops *model.TreeOps, createOrder []string) error {
	if ops == nil {
		return nil
	}

	if len(ops.Create) > 0 {
		stmt, args, err := buildCreateInsert(streamID, ops.Create, createOrder).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		_, err = r.Chk(ctx).ExecContext(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("failed to insert messages: %v", err)
		}
	}

	for _, op := range ops.Update {
		if op.Content == nil && op.Parent == nil {
			continue
		}

		query := sq.Update("messages").
			Where(sq.Eq{"id": op.ID, "stream_id": streamID, "deleted_at": nil}).
			PlaceholderFormat(sq.Dollar)
		if op.Content != nil {
			query = query.Set("content", *op.Content).Set("updated_at", sq.Expr("NOW()"))
		}
		if op.Parent != nil {
			query = query.Set("parent_id", op.Parent.ParentID())
		}

		stmt, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		_, err = r.Chk(ctx).ExecContext(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("failed to update message %s: %v", op.ID, err)
		}
	}

	if len(ops.Delete) > 0 {
		stmt, args, err := sq.Update("messages").
			Set("deleted_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": ops.Delete, "stream_id": streamID, "deleted_at": nil}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		_, err = r.Chk(ctx).ExecContext(ctx, stmt, args...)
		if err != nil {
			return fmt.Errorf("failed to delete messages: %v", err)
		}
	}

	return nil
}

func (r *Repository) TouchStream(ctx context.Context, streamID string) error {
	query, args, err := sq.Update("streams").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": streamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// buildCreateInsert spaces sent_at one microsecond apart in creation order on top of
// clock_timestamp(), which is read after the stream lock and so follows every committed row.
func buildCreateInsert(streamID string, chains []*model.CreateNode, createOrder []string) sq.InsertBuilder {
	query := sq.Insert("messages").
		Columns("id", "stream_id", "sender_id", "type", "content", "parent_id", "sent_at").
		PlaceholderFormat(sq.Dollar)

	for _, row := range insertRows(chains, createOrder) {
		msg := row.node.Message
		query = query.Values(msg.ID, streamID, msg.SenderID, msg.Type, msg.Content, row.node.Parent.ParentID(),
			sq.Expr("clock_timestamp() + ?::int * INTERVAL '1 microsecond'", row.seq))
	}

	return query
}

type insertRow struct {
	node *model.CreateNode
	seq  int
}

// insertRows flattens every chain parent-first and tags each row with its position in
// createOrder. Rows missing from createOrder sort after all listed ones.
func insertRows(chains []*model.CreateNode, createOrder []string) []insertRow {
	seq := make(map[string]int, len(createOrder))
	for i, id := range createOrder {
		seq[id] = i
	}

	var rows []insertRow
	for _, chain := range chains {
		for _, node := range flattenChain(chain) {
			pos, ok := seq[node.Message.ID]
			if !ok {
				pos = len(createOrder) + len(rows)
			}
			rows = append(rows, insertRow{node: node, seq: pos})
		}
	}

	return rows
}

// flattenChain lists a nested create chain innermost (root-most) first.
func flattenChain(node *model.CreateNode) []*model.CreateNode {
	var path []*model.CreateNode
	for n := node; n != nil; {
		path = append(path, n)
		if n.Parent.Kind != model.ParentCreate {
			break
		}
		n = n.Parent.Node
	}
	slices.Reverse(path)

	return path
}
