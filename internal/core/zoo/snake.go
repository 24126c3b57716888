package zoo

type Snake struct {
	body
}

func (s *Snake) Talk() {
	s.out.Print(hissToken)
}
