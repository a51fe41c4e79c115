package dto

type Record struct {
	Command  string
	Calories float64
}

type Line struct {
	Label    string
	Bar      string
	Calories int
}

type Report struct {
	Lines []Line
	Total int
	Empty bool
}
