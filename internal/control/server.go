package control

import (
	"io"
	"net"
	"sync"
)

// Server accepts one-shot connections on a local ephemeral port and
// queues decoded requests for the interactive loop.
//
// One goroutine accepts connections; each connection is read to EOF
// and decoded on its own short-lived goroutine, which then appends to
// the queue under the mutex. The interactive loop is the sole
// consumer, draining once per tick. Queue order is decode-completion
// order, not accept order.
type Server struct {
	ln net.Listener

	mu    sync.Mutex
	queue []Request
}

// Listen binds to an OS-chosen port on the loopback interface.
func Listen() (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	return &Server{ln: ln}, nil
}

// Addr returns the bound address, for publishing via the lock record.
func (s *Server) Addr() *net.TCPAddr {
	return s.ln.Addr().(*net.TCPAddr)
}

// Serve starts the accept loop in the background and returns.
func (s *Server) Serve() {
	go func() {
		for {
			conn, err := s.ln.Accept()
			if err != nil {
				return
			}
			go s.handle(conn)
		}
	}()
}

// handle reads one connection to completion. Empty or undecodable
// payloads are dropped silently: delivery is at-most-once and the
// sender gets no feedback.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	data, err := io.ReadAll(conn)
	if err != nil || len(data) == 0 {
		return
	}
	req, err := DecodeRequest(data)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, req)
	s.mu.Unlock()
}

// Drain removes and returns all queued requests in FIFO order.
func (s *Server) Drain() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := s.queue
	s.queue = nil
	return queue
}

// Close stops accepting connections.
func (s *Server) Close() error {
	return s.ln.Close()
}
