package pipeline

// RunStats tracks aggregate counters across one or more batches.
type RunStats struct {
	Total            int
	Current          int
	Succeeded        int
	Failed           int
	TotalOutputBytes int64
}

// Add accumulates o into s. Current is not summed.
func (s *RunStats) Add(o RunStats) {
	s.Total += o.Total
	s.Succeeded += o.Succeeded
	s.Failed += o.Failed
	s.TotalOutputBytes += o.TotalOutputBytes
}
