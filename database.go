package roble

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openlab-uniandes/roble-go/internal/api"
	roblerr "github.com/openlab-uniandes/roble-go/internal/errors"
	"github.com/openlab-uniandes/roble-go/internal/types"
)

// idColumn is the backend's row identifier column.
const idColumn = "_id"

// --------------------------------------------------------------------
// Data operations - thin callers of the request pipeline
// --------------------------------------------------------------------

// CreateTable creates a new table in the project schema.
func (c *Client) CreateTable(ctx context.Context, tableName string, columns []Column) error {
	_, err := c.do(ctx, api.RequestSpec{
		Kind:     KindDatabase,
		Method:   http.MethodPost,
		Endpoint: "create-table",
		Body:     types.CreateTableRequest{TableName: tableName, Columns: columns},
	})
	return err
}

// GetTableData returns the backend's metadata view of a table.
func (c *Client) GetTableData(ctx context.Context, tableName string) (Record, error) {
	v, err := c.do(ctx, api.RequestSpec{
		Kind:     KindDatabase,
		Method:   http.MethodGet,
		Endpoint: "table-data",
		Query:    map[string]string{"schema": "public", "table": tableName},
	})
	if err != nil {
		return nil, err
	}
	return record(v), nil
}

// Create inserts one record and returns the stored row. When the response
// carries a non-empty "inserted" list its first element is returned;
// a plain object response is returned as-is; anything else fails with
// InsertFailed.
func (c *Client) Create(ctx context.Context, tableName string, rec Record) (Record, error) {
	v, err := c.do(ctx, api.RequestSpec{
		Kind:     KindDatabase,
		Method:   http.MethodPost,
		Endpoint: "insert",
		Body:     types.InsertRequest{TableName: tableName, Records: []Record{rec}},
	})
	if err != nil {
		return nil, err
	}

	resp, ok := types.AsRecord(v)
	if !ok {
		return nil, roblerr.New(roblerr.InsertFailed, "insert failed: unexpected response shape")
	}
	if inserted, ok := resp["inserted"].([]any); ok && len(inserted) > 0 {
		if first, ok := types.AsRecord(inserted[0]); ok {
			return first, nil
		}
	}
	return resp, nil
}

// Read returns the rows of a table, optionally filtered by exact column
// values. Filter values are stringified into URL query parameters. An
// unrecognized response shape yields an empty slice, never an error.
func (c *Client) Read(ctx context.Context, tableName string, filters map[string]any) ([]Record, error) {
	query := map[string]string{"tableName": tableName}
	for k, v := range filters {
		query[k] = fmt.Sprintf("%v", v)
	}

	v, err := c.do(ctx, api.RequestSpec{
		Kind:     KindDatabase,
		Method:   http.MethodGet,
		Endpoint: "read",
		Query:    query,
	})
	if err != nil {
		return nil, err
	}
	return types.Records(v), nil
}

// Update patches the row identified by id. Any "_id" or "id" field the
// caller left in the patch is stripped before transmission.
func (c *Client) Update(ctx context.Context, tableName string, id any, patch Record) (Record, error) {
	updates := make(Record, len(patch))
	for k, v := range patch {
		if k == "_id" || k == "id" {
			continue
		}
		updates[k] = v
	}

	v, err := c.do(ctx, api.RequestSpec{
		Kind:     KindDatabase,
		Method:   http.MethodPut,
		Endpoint: "update",
		Body:     types.UpdateRequest{TableName: tableName, IDColumn: idColumn, IDValue: id, Updates: updates},
	})
	if err != nil {
		return nil, err
	}
	return record(v), nil
}

// Delete removes the row identified by id and returns the backend response.
func (c *Client) Delete(ctx context.Context, tableName string, id any) (Record, error) {
	v, err := c.do(ctx, api.RequestSpec{
		Kind:     KindDatabase,
		Method:   http.MethodDelete,
		Endpoint: "delete",
		Body:     types.DeleteRequest{TableName: tableName, IDColumn: idColumn, IDValue: id},
	})
	if err != nil {
		return nil, err
	}
	return record(v), nil
}

// --------------------------------------------------------------------
// Convenience wrappers
// --------------------------------------------------------------------

// GetAll returns every row of a table.
func (c *Client) GetAll(ctx context.Context, tableName string) ([]Record, error) {
	return c.Read(ctx, tableName, nil)
}

// GetByID returns the row with the given id, or nil when absent.
func (c *Client) GetByID(ctx context.Context, tableName string, id any) (Record, error) {
	recs, err := c.Read(ctx, tableName, map[string]any{idColumn: id})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// GetWhere returns the rows whose column equals value.
func (c *Client) GetWhere(ctx context.Context, tableName, column string, value any) ([]Record, error) {
	return c.Read(ctx, tableName, map[string]any{column: value})
}
