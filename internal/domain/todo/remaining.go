package todo

// CountRemaining returns how many todos are not yet completed.
func CountRemaining(todos []Todo) int {
	var n int
	for i := range todos {
		if !todos[i].Completed {
			n++
		}
	}
	return n
}
