package store

import (
	"time"

	"template-vault/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 依 dest 數量模擬 users 查詢的掃描
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 8:
		// userColumns
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.PasswordHash
		*dest[3].(*string) = u.FirstName
		*dest[4].(*string) = u.LastName
		*dest[5].(*bool) = u.Active
		*dest[6].(*time.Time) = u.CreatedAt
		*dest[7].(*time.Time) = u.UpdatedAt
	case 4:
		// Create: id, active, created_at, updated_at
		*dest[0].(*string) = u.ID
		*dest[1].(*bool) = u.Active
		*dest[2].(*time.Time) = u.CreatedAt
		*dest[3].(*time.Time) = u.UpdatedAt
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeTemplateRow 依 dest 數量模擬 templates 查詢的掃描
type fakeTemplateRow struct {
	scanErr error
	tpl     *model.Template
}

func (r *fakeTemplateRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	t := r.tpl
	switch len(dest) {
	case 7:
		writeTemplate(dest, t)
	case 3:
		// Create: id, created_at, updated_at
		*dest[0].(*string) = t.ID
		*dest[1].(*time.Time) = t.CreatedAt
		*dest[2].(*time.Time) = t.UpdatedAt
	default:
		panic("fakeTemplateRow.Scan: unexpected number of dest")
	}
	return nil
}

func writeTemplate(dest []any, t *model.Template) {
	*dest[0].(*string) = t.ID
	*dest[1].(*string) = t.OwnerID
	*dest[2].(*string) = t.Name
	*dest[3].(*string) = t.Subject
	*dest[4].(*string) = t.Body
	*dest[5].(*time.Time) = t.CreatedAt
	*dest[6].(*time.Time) = t.UpdatedAt
}

// fakeTemplateRows 實作 pgx.Rows
type fakeTemplateRows struct {
	data    []model.Template
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeTemplateRows) Close()                                       { r.closed = true }
func (r *fakeTemplateRows) Err() error                                   { return r.err }
func (r *fakeTemplateRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeTemplateRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeTemplateRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeTemplateRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	t := r.data[r.idx]
	r.idx++
	writeTemplate(dest, &t)
	return nil
}
func (r *fakeTemplateRows) Values() ([]any, error) { return nil, nil }
func (r *fakeTemplateRows) RawValues() [][]byte    { return nil }
func (r *fakeTemplateRows) Conn() *pgx.Conn        { return nil }
