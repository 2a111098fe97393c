package usecase

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/leadstore/internal/entity"
)

// DeleteResult is the outcome for one id in a bulk delete.
type DeleteResult struct {
	ID  int64
	Err error
}

type DeleteLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewDeleteLeadsUseCase(repo entity.LeadRepositoryInterface) *DeleteLeadsUseCase {
	return &DeleteLeadsUseCase{Repo: repo}
}

// ParseIDList keeps the ids that parse as base-10 integers and silently drops
// the rest. Lenient filtering, not a validation error path.
func ParseIDList(raw []string) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Execute deletes each id concurrently and independently. This is best effort,
// not atomic: ids deleted before a sibling fails stay deleted. The per-id
// results carry the detail; the returned error is the aggregate view
// (BULK_DELETE_FAILURE when any id failed).
func (uc *DeleteLeadsUseCase) Execute(ctx context.Context, rawIDs []string) ([]DeleteResult, error) {
	ids := ParseIDList(rawIDs)
	results := make([]DeleteResult, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			err := uc.Repo.Delete(ctx, id)
			results[i] = DeleteResult{ID: id, Err: err}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, NewError(KindBulkDeleteFailure, "one or more leads could not be deleted", err)
	}

	return results, nil
}
