package get_business_hours

type Logger interface {
	Info(format string, v ...interface{})
}
