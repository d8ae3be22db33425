package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT запрос по колонкам columns
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает INSERT запрос в таблицу table
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Delete начинает DELETE запрос из таблицы table
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
