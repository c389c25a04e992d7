package mq

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// Publisher broadcasts encoded leak alerts on a ZMQ PUB socket.
type Publisher struct {
	mu     sync.Mutex // zmq sockets are not safe for concurrent use
	socket *zmq.Socket
}

// NewPublisher binds a PUB socket to addr, e.g. "tcp://*:5570".
func NewPublisher(addr string) (*Publisher, error) {
	sock, err := zmq.NewSocket(zmq.PUB)
	if err != nil {
		return nil, err
	}
	if err := sock.Bind(addr); err != nil {
		sock.Close()
		return nil, err
	}
	return &Publisher{socket: sock}, nil
}

// Send emits one payload.
func (p *Publisher) Send(payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.socket.SendBytes(payload, 0)
	return err
}

// Close releases underlying publisher socket resources.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.socket.Close()
}
