package pg

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

type Rows struct {
	*sql.Rows
}

//Parse decodes rows holding a single JSON object column.
func (rows *Rows) Parse() ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		obj := make(map[string]interface{})
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, errors.Wrap(err, "decode row")
		}
		result = append(result, obj)
	}
	return result, rows.Err()
}
