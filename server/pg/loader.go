package pg

import (
	"bytes"
	"database/sql"
	"fmt"

	"relview/logger"
	dataErrors "relview/server/data/errors"
	"relview/server/object/meta"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const TableNamePrefix = "o_"

func GetTableName(metaName string) string {
	name := bytes.NewBufferString(TableNamePrefix)
	name.WriteString(metaName)
	return name.String()
}

//Loader reads records from the table of their object, one JSON row per record.
type Loader struct {
	db *sql.DB
}

func NewLoader(db *sql.DB) *Loader {
	return &Loader{db: db}
}

func (loader *Loader) Get(m *meta.Meta, key string, val interface{}) (map[string]interface{}, error) {
	objs, err := loader.query(m, key, val, 2)
	if err != nil {
		return nil, err
	}
	switch len(objs) {
	case 0:
		return nil, nil
	case 1:
		return objs[0], nil
	}
	return nil, dataErrors.NewDataError(m.Name, dataErrors.ErrKeyValueNotFound, "Too many rows found for %s=%v", key, val)
}

func (loader *Loader) GetAll(m *meta.Meta, key string, val interface{}) ([]map[string]interface{}, error) {
	return loader.query(m, key, val, 0)
}

func SelectQuery(m *meta.Meta, key string, limit int) string {
	var q bytes.Buffer
	fmt.Fprintf(&q, "SELECT row_to_json(t) FROM %s t WHERE t.%s = $1 ORDER BY t.%s",
		pq.QuoteIdentifier(GetTableName(m.Name)), pq.QuoteIdentifier(key), pq.QuoteIdentifier(m.Key))
	if limit > 0 {
		fmt.Fprintf(&q, " LIMIT %d", limit)
	}
	return q.String()
}

func (loader *Loader) query(m *meta.Meta, key string, val interface{}, limit int) ([]map[string]interface{}, error) {
	rows, err := loader.db.Query(SelectQuery(m, key, limit), BindValue(val))
	if err != nil {
		logger.Error("Execution statement error: %s\nBinds: %v", err.Error(), val)
		return nil, asDataError(m, err)
	}
	defer rows.Close()
	objs, err := (&Rows{rows}).Parse()
	if err != nil {
		return nil, asDataError(m, err)
	}
	return objs, nil
}

//BindValue formats the value as text, the driver casts it to the column type.
func BindValue(val interface{}) interface{} {
	switch val := val.(type) {
	case nil:
		return nil
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
	}
	return fmt.Sprint(val)
}

func asDataError(m *meta.Meta, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01":
			return dataErrors.NewDataError(m.Name, dataErrors.ErrObjectClassNotFound, "Table of object '%s' does not exist", m.Name)
		case "42703":
			return dataErrors.NewDataError(m.Name, dataErrors.ErrKeyValueNotFound, "%s", pgErr.Message)
		}
		return dataErrors.NewDataError(m.Name, dataErrors.ErrDataInternal, "%s", pgErr.Message)
	}
	return dataErrors.NewDataError(m.Name, dataErrors.ErrLoaderUnavailable, "%s", err.Error())
}
