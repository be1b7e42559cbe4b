package service

import (
	"ForumFlare/internal/model"
	"ForumFlare/internal/repository"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
	err   error
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users = append(f.users, &cp)
	return user.ID, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetAllUsers(context.Context) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.User(nil), f.users...), nil
}

func (f *fakeUserRepo) PromoteBadge(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	for _, u := range f.users {
		if u.Email == email && u.Badge == model.BadgeBronze {
			u.Badge = model.BadgeGold
		}
	}
	f.mu.Unlock()
	return f.GetUserByEmail(ctx, email)
}

func (f *fakeUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) (*repository.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			res := &repository.UpdateResult{MatchedCount: 1}
			if u.Role != role {
				u.Role = role
				res.ModifiedCount = 1
			}
			return res, nil
		}
	}
	return &repository.UpdateResult{}, nil
}

func (f *fakeUserRepo) GetUserWithPosts(ctx context.Context, email string) (*model.UserWithPosts, error) {
	u, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &model.UserWithPosts{User: *u}, nil
}

func (f *fakeUserRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts []*model.Post
	calls []string
}

func (f *fakePostRepo) add(p *model.Post) *model.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.posts = append(f.posts, p)
	return p
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) (primitive.ObjectID, error) {
	cp := *post
	return f.add(&cp).ID, nil
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) DeletePost(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakePostRepo) filtered(tag string, less func(a, b *model.Post) bool, skip, limit int64) []*model.Post {
	var out []*model.Post
	for _, p := range f.posts {
		if tag == "" {
			out = append(out, p)
			continue
		}
		for _, t := range p.Tags {
			if strings.Contains(strings.ToLower(t), strings.ToLower(tag)) {
				out = append(out, p)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if skip >= int64(len(out)) {
		return []*model.Post{}
	}
	out = out[skip:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakePostRepo) GetRecentPosts(_ context.Context, tag string, skip, limit int64) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "recent")
	return f.filtered(tag, func(a, b *model.Post) bool { return a.Time.After(b.Time) }, skip, limit), nil
}

func (f *fakePostRepo) GetPopularPosts(_ context.Context, tag string, skip, limit int64) ([]*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "popular")
	return f.filtered(tag, func(a, b *model.Post) bool { return a.Popularity() > b.Popularity() }, skip, limit), nil
}

func (f *fakePostRepo) IncrVote(_ context.Context, id primitive.ObjectID, field string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.posts {
		if p.ID == id {
			if field == repository.VoteUp {
				p.Upvote++
			} else {
				p.Downvote++
			}
			cp := *p
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.posts)), nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []*model.Comment
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, c *model.Comment) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = primitive.NewObjectID()
	cp := *c
	f.comments = append(f.comments, &cp)
	return c.ID, nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Comment, 0)
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) GetCommentsWithFeedback(context.Context) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Comment, 0)
	for _, c := range f.comments {
		if c.Feedback != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) get(id primitive.ObjectID) *model.Comment {
	for _, c := range f.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (f *fakeCommentRepo) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) (*repository.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.get(id)
	if c == nil {
		return &repository.UpdateResult{}, nil
	}
	c.Feedback = &feedback
	c.Reported = true
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeCommentRepo) SetAction(_ context.Context, id primitive.ObjectID, action string) (*repository.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.get(id)
	if c == nil {
		return &repository.UpdateResult{}, nil
	}
	c.Action = &action
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeCommentRepo) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.comments)), nil
}

type fakeTagRepo struct {
	tags []*model.Tag
}

func (f *fakeTagRepo) GetTags(_ context.Context, search string) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0)
	for _, t := range f.tags {
		if strings.Contains(strings.ToLower(t.Name), strings.ToLower(search)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTagRepo) Count(context.Context) (int64, error) {
	return int64(len(f.tags)), nil
}

type fakeAnnouncementRepo struct {
	list []*model.Announcement
}

func (f *fakeAnnouncementRepo) CreateAnnouncement(_ context.Context, a *model.Announcement) (primitive.ObjectID, error) {
	a.ID = primitive.NewObjectID()
	f.list = append([]*model.Announcement{a}, f.list...)
	return a.ID, nil
}

func (f *fakeAnnouncementRepo) GetAnnouncements(context.Context) ([]*model.Announcement, error) {
	return f.list, nil
}

func (f *fakeAnnouncementRepo) Count(context.Context) (int64, error) {
	return int64(len(f.list)), nil
}

type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
	ttl  map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeKV) SetWithExpiration(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, _ := value.(string)
	f.data[key] = s
	f.ttl[key] = expiration
	return nil
}

func (f *fakeKV) GetValue(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

type fakeGateway struct {
	amount   int64
	currency string
	methods  []string
	err      error
}

func (f *fakeGateway) CreatePaymentIntent(_ context.Context, amount int64, currency string, methodTypes []string) (*model.PaymentIntent, error) {
	f.amount, f.currency, f.methods = amount, currency, methodTypes
	if f.err != nil {
		return nil, f.err
	}
	return &model.PaymentIntent{ID: "pi_1", Amount: amount, Currency: currency, ClientSecret: "pi_1_secret"}, nil
}
