package sqlstore

const tableTasks = "tasks"

// createTasksTable is written in the portable form understood by
// sqldb.Dialect.CreateTableSQL.
const createTasksTable = `CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	due_date DATE NULL,
	status TEXT NOT NULL
)`

const selectTaskColumns = `SELECT id, title, description, due_date, status FROM tasks`

var (
	taskColumns       = []string{"id", "title", "description", "due_date", "status"}
	taskUpdateColumns = []string{"title", "description", "due_date", "status"}
)

// orderByClauses whitelists the accepted ListTasksOptions.OrderBy values.
var orderByClauses = map[string]string{
	"":              "id ASC",
	"id":            "id ASC",
	"id desc":       "id DESC",
	"due_date":      "due_date ASC, id ASC",
	"due_date desc": "due_date DESC, id ASC",
}
