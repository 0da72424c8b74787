package maxdb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xwb1989/sqlparser"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
)

var _ utils.SQLFormatter = (*sqlFormatter)(nil)

var plainIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_#@$]*$`)

// reservedWords lists the MaxDB keywords that can not be used as bare identifiers.
var reservedWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		ADD ALL ALTER AND ANY AS ASC BETWEEN BY CASE CHAR CHECK COLUMN CONSTRAINT
		CREATE CROSS CURRENT DATE DEFAULT DELETE DESC DISTINCT DROP ELSE END ESCAPE
		EXCEPT EXISTS FALSE FOR FOREIGN FROM FULL GRANT GROUP HAVING IN INDEX INNER
		INSERT INTERSECT INTO IS JOIN KEY LEFT LIKE LIMIT NOT NULL OF ON OR ORDER
		OUTER PRIMARY REFERENCES RIGHT ROWNO ROWID SELECT SET SOME SYSDBA TABLE THEN
		TIME TIMESTAMP TO TRUE UNION UNIQUE UPDATE USER USERGROUP USING VALUE VALUES
		VIEW WHEN WHERE WITH`) {
		reservedWords[w] = struct{}{}
	}
}

type sqlFormatter struct {
}

// Render prints the statement in the MaxDB dialect. Bind placeholders and
// CONVERT/CAST expressions have no MaxDB rendering and yield ErrRender.
// Source identifier quoting is not preserved: a name is quoted only when it
// is reserved or not a plain identifier, so a backticked mixed-case name is
// rendered bare and folded to upper case by the server.
func (f *sqlFormatter) Render(node sqlparser.SQLNode) (out string, err error) {
	if node == nil {
		return "", fmt.Errorf("%w: empty statement", utils.ErrRender)
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%w: %v", utils.ErrRender, r)
		}
	}()

	buf := sqlparser.NewTrackedBuffer(f.formatNode)
	buf.Myprintf("%v", node)

	return buf.String(), nil
}

func (f *sqlFormatter) formatNode(buf *sqlparser.TrackedBuffer, node sqlparser.SQLNode) {
	switch n := node.(type) {
	case sqlparser.ColIdent:
		buf.WriteString(f.quoteIfNeeded(n.String()))
	case sqlparser.TableIdent:
		buf.WriteString(f.quoteIfNeeded(n.String()))
	case *sqlparser.SQLVal:
		switch n.Type {
		case sqlparser.StrVal:
			buf.WriteString(quoteString(string(n.Val)))
		case sqlparser.ValArg:
			panic(fmt.Errorf("bind placeholder %s: statements are run without arguments", n.Val))
		default:
			n.Format(buf)
		}
	case sqlparser.ListArg:
		panic(fmt.Errorf("list placeholder %s: statements are run without arguments", string(n)))
	case *sqlparser.ConvertExpr, *sqlparser.ConvertUsingExpr:
		panic(fmt.Errorf("type conversion %s is not supported by MaxDB", sqlparser.String(n)))
	case *sqlparser.Limit:
		if n == nil {
			return
		}

		buf.Myprintf(" limit %v", n.Rowcount)

		if n.Offset != nil {
			buf.Myprintf(" offset %v", n.Offset)
		}
	default:
		node.Format(buf)
	}
}

func (f *sqlFormatter) quoteIfNeeded(ident string) string {
	if plainIdentifier.MatchString(ident) {
		if _, reserved := reservedWords[strings.ToUpper(ident)]; !reserved {
			return ident
		}
	}

	return f.SanitiseIdentifier(ident)
}

func (f *sqlFormatter) ListTablesQuery(schema string) (string, []any) {
	return "SELECT TABLENAME FROM DOMAIN.TABLES WHERE SCHEMANAME = ? ORDER BY TABLENAME", []any{schema}
}

func (f *sqlFormatter) ListColumnsQuery(schema, table string) (string, []any) {
	return "SELECT COLUMNNAME, DATATYPE, LEN FROM DOMAIN.COLUMNS WHERE SCHEMANAME = ? AND TABLENAME = ? ORDER BY POS",
		[]any{schema, table}
}

func (f *sqlFormatter) SanitiseIdentifier(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func NewSQLFormatter() utils.SQLFormatter {
	return &sqlFormatter{}
}
