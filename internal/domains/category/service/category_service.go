package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared/utils"
)

// maxTreeDepth bounds parent-chain walks so a pre-existing malformed
// hierarchy cannot loop the cycle check forever.
const maxTreeDepth = 100

// BookCounter reports how many books reference a category. Satisfied by
// the book repository; used for the delete guard and book_count recompute.
type BookCounter interface {
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
}

type CategoryService struct {
	repo  category.Repository
	books BookCounter
}

func NewService(repo category.Repository, books BookCounter) category.Service {
	return &CategoryService{repo: repo, books: books}
}

func (s *CategoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug, err := req.ResolveSlug()
	if err != nil {
		return nil, err
	}

	var parentID *primitive.ObjectID
	if req.ParentID != "" {
		id, err := primitive.ObjectIDFromHex(req.ParentID)
		if err != nil {
			return nil, category.ErrInvalidCategoryID
		}
		ok, err := s.repo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, category.ErrParentNotFound
		}
		parentID = &id
	}

	c := req.ToCategory(parentID, slug, time.Now().UTC())
	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	return c, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*category.Category, error) {
	return s.load(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, page, perPage int) ([]category.Category, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	total, err := s.repo.Count(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := int64(page-1) * int64(perPage)
	categories, err := s.repo.Find(ctx, bson.M{}, skip, int64(perPage))
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req category.UpdateCategoryRequest) (*category.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if *req.ParentID == "" {
			// Explicit empty string detaches the category to root level.
			c.ParentID = nil
		} else {
			parentID, err := primitive.ObjectIDFromHex(*req.ParentID)
			if err != nil {
				return nil, category.ErrInvalidCategoryID
			}
			if err := s.checkParent(ctx, c.ID, parentID); err != nil {
				return nil, err
			}
			c.ParentID = &parentID
		}
	}

	if req.Name != nil {
		c.Name = category.NormalizeName(*req.Name)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Slug != nil {
		slug := utils.GenerateSlug(*req.Slug)
		if slug == "" {
			return nil, category.ErrInvalidSlug
		}
		c.Slug = slug
	}
	if req.Color != nil {
		c.Color = *req.Color
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	if req.IsFeatured != nil {
		c.IsFeatured = *req.IsFeatured
	}
	if req.Keywords != nil {
		c.Keywords = category.NormalizeKeywords(req.Keywords)
	}
	if req.Status != nil {
		c.Status = category.Status(*req.Status)
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	c, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	bookCount, err := s.books.CountByCategory(ctx, c.ID)
	if err != nil {
		return err
	}
	if bookCount > 0 {
		return category.ErrCategoryHasBooks
	}

	childCount, err := s.repo.CountChildren(ctx, c.ID)
	if err != nil {
		return err
	}
	if childCount > 0 {
		return category.ErrCategoryHasSubcategories
	}

	deleted, err := s.repo.Delete(ctx, c.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) SearchByName(ctx context.Context, name string) ([]category.Category, error) {
	return s.repo.SearchByName(ctx, name)
}

// GetTree builds the nested hierarchy from flat storage by grouping on
// parent_id. Depth starts at 0 for roots. Categories whose parent is
// missing from the collection surface as roots.
func (s *CategoryService) GetTree(ctx context.Context) ([]*category.TreeNode, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]bool, len(categories))
	for _, c := range categories {
		byID[c.ID] = true
	}

	children := map[primitive.ObjectID][]category.Category{}
	roots := []category.Category{}
	for _, c := range categories {
		if c.ParentID == nil || !byID[*c.ParentID] {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	var build func(c category.Category, depth int) *category.TreeNode
	build = func(c category.Category, depth int) *category.TreeNode {
		node := &category.TreeNode{
			Category: c,
			Depth:    depth,
			Children: []*category.TreeNode{},
		}
		for _, child := range children[c.ID] {
			node.Children = append(node.Children, build(child, depth+1))
		}
		return node
	}

	tree := []*category.TreeNode{}
	for _, root := range roots {
		tree = append(tree, build(root, 0))
	}
	return tree, nil
}

// GetSubcategories returns direct children only.
func (s *CategoryService) GetSubcategories(ctx context.Context, parentID string) ([]category.Category, error) {
	c, err := s.load(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindChildren(ctx, c.ID)
}

// UpdateBookCount recomputes the derived book_count from the books
// collection and persists it.
func (s *CategoryService) UpdateBookCount(ctx context.Context, id string) (*category.Category, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.books.CountByCategory(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	c.BookCount = int(count)
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *CategoryService) load(ctx context.Context, id string) (*category.Category, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, category.ErrInvalidCategoryID
	}

	c, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

// checkParent verifies the proposed parent exists and that walking its
// ancestor chain never reaches the category itself. The tree must stay
// acyclic since the store enforces nothing.
func (s *CategoryService) checkParent(ctx context.Context, selfID, parentID primitive.ObjectID) error {
	if parentID == selfID {
		return category.ErrParentCycle
	}

	current := parentID
	for depth := 0; depth < maxTreeDepth; depth++ {
		c, err := s.repo.FindByID(ctx, current)
		if err != nil {
			return err
		}
		if c == nil {
			if current == parentID {
				return category.ErrParentNotFound
			}
			// Broken ancestor link ends the chain: no cycle possible.
			return nil
		}
		if c.ParentID == nil {
			return nil
		}
		if *c.ParentID == selfID {
			return category.ErrParentCycle
		}
		current = *c.ParentID
	}

	return category.ErrParentCycle
}
