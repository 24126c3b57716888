package zoo

type Lion struct {
	body
}

func (l *Lion) Talk() {
	l.out.Print(roarToken)
}
