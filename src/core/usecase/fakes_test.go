package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
)

// memStore is shared in-memory state behind the fake repositories, so
// cross-entity behavior (cascades, denormalized names) works the same way
// it does against the real schema.
type memStore struct {
	users    map[int64]*domain.User
	posts    map[int64]*domain.BlogPost
	comments map[int64]*domain.Comment
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]*domain.User),
		posts:    make(map[int64]*domain.BlogPost),
		comments: make(map[int64]*domain.Comment),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) userName(id int64) string {
	if u, ok := m.users[id]; ok {
		return u.UserName
	}
	return ""
}

func (m *memStore) commentReads(postID int64) []ports.CommentRead {
	var reads []ports.CommentRead
	for _, c := range m.comments {
		if c.BlogPostID == postID {
			reads = append(reads, ports.CommentRead{
				ID:        c.ID,
				Content:   c.Content,
				CreatedAt: c.CreatedAt,
				UserID:    c.UserID,
				UserName:  m.userName(c.UserID),
			})
		}
	}
	sort.Slice(reads, func(i, j int) bool {
		if !reads[i].CreatedAt.Equal(reads[j].CreatedAt) {
			return reads[i].CreatedAt.Before(reads[j].CreatedAt)
		}
		return reads[i].ID < reads[j].ID
	})
	return reads
}

// fakeUserRepo implements ports.UserRepository.
type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	for _, u := range r.store.users {
		if u.UserName == userName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string, exclude int64) (bool, error) {
	for _, u := range r.store.users {
		if u.Email == email && u.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UserNameExists(_ context.Context, userName string, exclude int64) (bool, error) {
	for _, u := range r.store.users {
		if u.UserName == userName && u.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.store.users {
		if u.UserName == user.UserName || u.Email == user.Email {
			return domain.NewConflictError("username or email already in use")
		}
	}
	user.ID = r.store.id()
	user.CreatedAt = time.Now().UTC()
	cp := *user
	r.store.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return domain.NewNotFoundError("user")
	}
	cp := *user
	r.store.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := r.store.users[id]
	if !ok {
		return domain.NewNotFoundError("user")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.users[id]; !ok {
		return domain.NewNotFoundError("user")
	}
	delete(r.store.users, id)
	return nil
}

// fakePostRepo implements ports.BlogPostRepository. Deleting a post drops
// its comments, mirroring the storage cascade.
type fakePostRepo struct{ store *memStore }

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*domain.BlogPost, error) {
	p, ok := r.store.posts[id]
	if !ok {
		return nil, domain.NewNotFoundError("blog post")
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) read(p *domain.BlogPost) ports.BlogPostRead {
	comments := r.store.commentReads(p.ID)
	if comments == nil {
		comments = []ports.CommentRead{}
	}
	return ports.BlogPostRead{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		CreatedAt:    p.CreatedAt,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName(p.CategoryID),
		UserID:       p.UserID,
		UserName:     r.store.userName(p.UserID),
		Comments:     comments,
	}
}

func (r *fakePostRepo) GetRead(_ context.Context, id int64) (*ports.BlogPostRead, error) {
	p, ok := r.store.posts[id]
	if !ok {
		return nil, domain.NewNotFoundError("blog post")
	}
	read := r.read(p)
	return &read, nil
}

func (r *fakePostRepo) List(_ context.Context, filter ports.PostFilter) ([]ports.BlogPostRead, int64, error) {
	var matched []*domain.BlogPost
	for _, p := range r.store.posts {
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []ports.BlogPostRead{}, total, nil
	}
	matched = matched[filter.Offset:]
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	reads := make([]ports.BlogPostRead, 0, len(matched))
	for _, p := range matched {
		reads = append(reads, r.read(p))
	}
	return reads, total, nil
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.BlogPost) error {
	post.ID = r.store.id()
	cp := *post
	r.store.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, post *domain.BlogPost) error {
	if _, ok := r.store.posts[post.ID]; !ok {
		return domain.NewNotFoundError("blog post")
	}
	cp := *post
	r.store.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.posts[id]; !ok {
		return domain.NewNotFoundError("blog post")
	}
	delete(r.store.posts, id)
	for cid, c := range r.store.comments {
		if c.BlogPostID == id {
			delete(r.store.comments, cid)
		}
	}
	return nil
}

func (r *fakePostRepo) DeleteByAuthor(ctx context.Context, userID int64) error {
	for id, p := range r.store.posts {
		if p.UserID == userID {
			if err := r.Delete(ctx, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// fakeCommentRepo implements ports.CommentRepository.
type fakeCommentRepo struct{ store *memStore }

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.store.comments[id]
	if !ok {
		return nil, domain.NewNotFoundError("comment")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]ports.CommentRead, error) {
	return r.store.commentReads(postID), nil
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	comment.ID = r.store.id()
	cp := *comment
	r.store.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) UpdateContent(_ context.Context, id int64, content string) error {
	c, ok := r.store.comments[id]
	if !ok {
		return domain.NewNotFoundError("comment")
	}
	c.Content = content
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.comments[id]; !ok {
		return domain.NewNotFoundError("comment")
	}
	delete(r.store.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteByAuthor(_ context.Context, userID int64) error {
	for id, c := range r.store.comments {
		if c.UserID == userID {
			delete(r.store.comments, id)
		}
	}
	return nil
}

// Fixed category set matching the seeded data.
var seededCategories = []domain.Category{
	{ID: 1, Name: "Mindfulness & Meditation"},
	{ID: 2, Name: "Personal Growth"},
	{ID: 3, Name: "Lifestyle & Balance"},
	{ID: 4, Name: "Creativity & Inspiration"},
}

func categoryName(id int64) string {
	for _, c := range seededCategories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// fakeCategoryRepo implements ports.CategoryRepository over the fixed set.
type fakeCategoryRepo struct{}

func (fakeCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	return categoryName(id) != "", nil
}

func (fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(seededCategories))
	copy(out, seededCategories)
	return out, nil
}

// fakeTx runs the function directly; atomicity is the real store's concern.
type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeHasher is a reversible stand-in for bcrypt so tests stay fast.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "digest:" + plain, nil }
func (fakeHasher) Verify(plain, digest string) bool  { return digest == "digest:"+plain }

// fakeTokens issues a recognizable token per user.
type fakeTokens struct{}

func (fakeTokens) Issue(user *domain.User) (string, error) {
	return "token-" + user.UserName, nil
}

// env bundles the services under test over one shared store.
type env struct {
	store      *memStore
	users      *fakeUserRepo
	posts      *fakePostRepo
	comments   *fakeCommentRepo
	categories fakeCategoryRepo

	auth        *AuthService
	postSvc     *BlogPostService
	commentSvc  *CommentService
	categorySvc *CategoryService
}

func newEnv() *env {
	store := newMemStore()
	users := &fakeUserRepo{store: store}
	posts := &fakePostRepo{store: store}
	comments := &fakeCommentRepo{store: store}
	categories := fakeCategoryRepo{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &env{
		store:       store,
		users:       users,
		posts:       posts,
		comments:    comments,
		categories:  categories,
		auth:        NewAuthService(users, posts, comments, fakeHasher{}, fakeTokens{}, fakeTx{}, log),
		postSvc:     NewBlogPostService(posts, categories, log),
		commentSvc:  NewCommentService(comments, posts, log),
		categorySvc: NewCategoryService(categories),
	}
}

// fixedTime is a stable base timestamp for seeded rows.
func fixedTime() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

// addUser seeds a user directly and returns its id.
func (e *env) addUser(name, email, password string) int64 {
	id := e.store.id()
	e.store.users[id] = &domain.User{
		ID:           id,
		UserName:     name,
		Email:        email,
		PasswordHash: "digest:" + password,
		CreatedAt:    time.Now().UTC(),
	}
	return id
}

// addPost seeds a post directly and returns its id.
func (e *env) addPost(userID, categoryID int64, title string, createdAt time.Time) int64 {
	id := e.store.id()
	e.store.posts[id] = &domain.BlogPost{
		ID:         id,
		Title:      title,
		Content:    "content of " + title,
		UserID:     userID,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	return id
}

// addComment seeds a comment directly and returns its id.
func (e *env) addComment(postID, userID int64, content string, createdAt time.Time) int64 {
	id := e.store.id()
	e.store.comments[id] = &domain.Comment{
		ID:         id,
		Content:    content,
		BlogPostID: postID,
		UserID:     userID,
		CreatedAt:  createdAt,
	}
	return id
}
