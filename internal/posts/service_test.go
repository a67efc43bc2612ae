package posts

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanislav-shchetinin/security-web/internal/auth"
	"github.com/stanislav-shchetinin/security-web/internal/users"
)

type memUserStore struct {
	byUsername map[string]*users.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byUsername: make(map[string]*users.User)}
}

func (m *memUserStore) InTx(fn func(users.Store) error) error { return fn(m) }

func (m *memUserStore) Create(u *users.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	m.byUsername[u.Username] = &cp
	return nil
}

func (m *memUserStore) FindByUsername(username string) (*users.User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) ExistsByUsername(username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *memUserStore) ExistsByEmail(email string) (bool, error) {
	for _, u := range m.byUsername {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) List() ([]users.User, error) {
	out := make([]users.User, 0, len(m.byUsername))
	for _, u := range m.byUsername {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserStore) Count() (int64, error) { return int64(len(m.byUsername)), nil }

type memPostStore struct {
	users *memUserStore
	posts []Post
	clock time.Time
}

func newMemPostStore(us *memUserStore) *memPostStore {
	return &memPostStore{users: us, clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memPostStore) Create(p *Post) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	// monotonically increasing creation times
	m.clock = m.clock.Add(time.Second)
	p.CreatedAt = m.clock
	p.UpdatedAt = m.clock
	cp := *p
	for _, u := range m.users.byUsername {
		if u.ID == p.AuthorID {
			cp.Author = *u
		}
	}
	m.posts = append(m.posts, cp)
	return nil
}

func (m *memPostStore) ListAll() ([]Post, error) {
	out := make([]Post, len(m.posts))
	copy(out, m.posts)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memPostStore) ListByAuthor(authorID uuid.UUID) ([]Post, error) {
	all, _ := m.ListAll()
	var out []Post
	for _, p := range all {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPostStore) Count() (int64, error) { return int64(len(m.posts)), nil }

func seedUser(t *testing.T, store *memUserStore, username string) *users.User {
	t.Helper()
	u := &users.User{Username: username, Email: username + "@x.com", Role: users.RoleUser, Active: true}
	require.NoError(t, store.Create(u))
	out, err := store.FindByUsername(username)
	require.NoError(t, err)
	return out
}

func TestCreateAttributesCaller(t *testing.T) {
	userStore := newMemUserStore()
	postStore := newMemPostStore(userStore)
	seedUser(t, userStore, "alice")
	svc := NewService(postStore, userStore)

	res, err := svc.Create(auth.Identity{Username: "alice", Role: users.RoleUser}, "hello", "world")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "hello", res.Title)
	assert.Equal(t, "world", res.Content)
	assert.Equal(t, "alice", res.AuthorUsername)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestCreateUnknownCaller(t *testing.T) {
	userStore := newMemUserStore()
	postStore := newMemPostStore(userStore)
	svc := NewService(postStore, userStore)

	_, err := svc.Create(auth.Identity{Username: "nobody"}, "hello", "world")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestListAllNewestFirst(t *testing.T) {
	userStore := newMemUserStore()
	postStore := newMemPostStore(userStore)
	seedUser(t, userStore, "alice")
	svc := NewService(postStore, userStore)

	ident := auth.Identity{Username: "alice"}
	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ident, title, "body")
		require.NoError(t, err)
	}

	list, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "first", list[2].Title)
}

func TestListMineFiltersByCaller(t *testing.T) {
	userStore := newMemUserStore()
	postStore := newMemPostStore(userStore)
	seedUser(t, userStore, "alice")
	seedUser(t, userStore, "bob")
	svc := NewService(postStore, userStore)

	alice := auth.Identity{Username: "alice"}
	bob := auth.Identity{Username: "bob"}

	_, err := svc.Create(alice, "a1", "body")
	require.NoError(t, err)
	_, err = svc.Create(bob, "b1", "body")
	require.NoError(t, err)
	_, err = svc.Create(alice, "a2", "body")
	require.NoError(t, err)

	mine, err := svc.ListMine(alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "alice", p.AuthorUsername)
	}
	assert.Equal(t, "a2", mine[0].Title)
	assert.Equal(t, "a1", mine[1].Title)
}
