package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readOnlyServer speaks just enough RESP to act as a Redis server whose ACL
// lets the user read and ping but rejects every write with NOPERM, the way a
// real server answers commands queued inside MULTI before aborting EXEC
type readOnlyServer struct {
	ln net.Listener
	wg sync.WaitGroup
}

func startReadOnlyServer(t *testing.T) *readOnlyServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &readOnlyServer{ln: ln}
	srv.wg.Add(1)
	go srv.serve()

	t.Cleanup(func() {
		ln.Close()
		srv.wg.Wait()
	})
	return srv
}

func (s *readOnlyServer) Addr() string {
	return s.ln.Addr().String()
}

func (s *readOnlyServer) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			s.handle(conn)
		}()
	}
}

func (s *readOnlyServer) handle(conn net.Conn) {
	rd := bufio.NewReader(conn)
	for {
		args, err := readCommand(rd)
		if err != nil {
			return
		}

		var reply string
		switch name := strings.ToUpper(args[0]); name {
		case "PING":
			reply = "+PONG\r\n"
		case "CLIENT", "MULTI":
			reply = "+OK\r\n"
		case "EXEC":
			reply = "-EXECABORT Transaction discarded because of previous errors.\r\n"
		case "SET", "ZADD", "DEL", "ZREM", "PUBLISH":
			reply = fmt.Sprintf("-NOPERM User tutor has no permissions to run the '%s' command\r\n", strings.ToLower(name))
		case "EXISTS":
			reply = ":1\r\n"
		default:
			reply = fmt.Sprintf("-ERR unknown command '%s'\r\n", args[0])
		}

		if _, err := io.WriteString(conn, reply); err != nil {
			return
		}
	}
}

// readCommand reads one RESP array of bulk strings
func readCommand(rd *bufio.Reader) ([]string, error) {
	line, err := rd.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(line, "*") {
		return nil, fmt.Errorf("unexpected line %q", line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[1:]))
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		header, err := rd.ReadString('\n')
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(strings.TrimSpace(header[1:]))
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size+2)
		if _, err := io.ReadFull(rd, buf); err != nil {
			return nil, err
		}
		args = append(args, string(buf[:size]))
	}
	return args, nil
}

func newReadOnlyRepo(t *testing.T) Repository {
	t.Helper()
	srv := startReadOnlyServer(t)

	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	repo, err := NewRedis(&Config{RedisClient: client, Clock: clock.New(nil)})
	require.NoError(t, err)
	return repo
}

func TestWriteDeniedByACL(t *testing.T) {
	repo := newReadOnlyRepo(t)
	ctx := context.Background()

	session := &models.Session{
		Date:      "2024-06-15",
		StartTime: "09:00",
		EndTime:   "10:00",
		BatchType: models.BatchTypeMorning,
		Rate:      150,
	}

	t.Run("create", func(t *testing.T) {
		_, err := repo.CreateSession(ctx, &CreateSessionInput{UserID: "user-1", Session: session})
		require.Error(t, err)
		assert.True(t, permission.IsDenied(err), "got %v", err)
	})

	t.Run("update", func(t *testing.T) {
		existing := session.Clone()
		existing.ID = "s1"
		_, err := repo.UpdateSession(ctx, &UpdateSessionInput{UserID: "user-1", Session: existing})
		require.Error(t, err)
		assert.True(t, permission.IsDenied(err), "got %v", err)
	})

	t.Run("delete", func(t *testing.T) {
		err := repo.DeleteSession(ctx, &DeleteSessionInput{UserID: "user-1", SessionID: "s1"})
		require.Error(t, err)
		assert.True(t, permission.IsDenied(err), "got %v", err)
	})
}
