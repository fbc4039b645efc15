package pipe

import "io"

// ToUsing invokes work with r and returns its result. r.Close runs exactly
// once on every exit path, before control returns to the caller: after a
// normal return, and before a panic from work resumes propagating. A non-nil
// Close error is raised as a panic; if that happens while a panic from work
// is already unwinding, the runtime's usual nested-panic behavior applies.
func ToUsing[R io.Closer, Out any](r R, work Transform[R, Out]) Out {
	defer func() {
		if err := r.Close(); err != nil {
			panic(err)
		}
	}()
	return work(r)
}
