package sqlite

// Schema DDL. Position records insertion order so Load can return items in
// the order they were first added.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE CHECK (name <> ''),
    quantity INTEGER NOT NULL CHECK (quantity >= 0),
    position INTEGER NOT NULL
);`

	idxItemsPosition = `CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);`
)

// schemaDDL lists all statements executed on Open, in order.
var schemaDDL = []string{
	createItems,
	idxItemsPosition,
}
