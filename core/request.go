package core

import (
	"sync"
	"time"
)

// Request is a single message handed from a caller to the print queue.
// It is immutable once enqueued and consumed exactly once by the queue
// worker.
type Request struct {
	Time     time.Time
	Severity Severity
	Message  string
	Name     string
}

// requestPool is a pool of Request objects to reduce allocations
var requestPool = sync.Pool{
	New: func() interface{} {
		return &Request{}
	},
}

// GetRequest retrieves a Request from the pool with Time set to now.
func GetRequest() *Request {
	r := requestPool.Get().(*Request)
	r.Time = time.Now()
	return r
}

// PutRequest returns a Request to the pool.
func PutRequest(r *Request) {
	if r == nil {
		return
	}
	r.Message = ""
	r.Name = ""
	requestPool.Put(r)
}
