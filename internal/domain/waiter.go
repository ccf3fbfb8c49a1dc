package domain

// Waiter — официант из статического ростера терминала.
// PIN хранится открытым текстом и служит идентификацией оператора,
// а не криптографической защитой.
type Waiter struct {
	ID   string
	Name string
	PIN  string
}

func NewWaiter(id, name, pin string) *Waiter {
	return &Waiter{
		ID:   id,
		Name: name,
		PIN:  pin,
	}
}
