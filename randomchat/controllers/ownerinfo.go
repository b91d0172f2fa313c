// randomchat/controllers/ownerinfo.go
package controllers

import (
	"context"
	"fmt"

	apperrors "randomchat/randomchat/errors"
	"randomchat/randomchat/sources/psql/models"
	"randomchat/randomchat/utils/logging"
	"randomchat/randomchat/utils/types"

	"go.uber.org/zap"
)

// OwnerInfoSaver is the write side of the singleton owner record.
// *dao.OwnerInfoDAO satisfies both sides.
type OwnerInfoSaver interface {
	Save(ctx context.Context, name, dob, name1 string) (*models.OwnerInfo, error)
}

type OwnerInfoController struct {
	store OwnerInfoSaver
}

func NewOwnerInfoController(store OwnerInfoSaver) *OwnerInfoController {
	return &OwnerInfoController{store: store}
}

// Save upserts the singleton owner record; last write wins.
func (c *OwnerInfoController) Save(ctx context.Context, req types.OwnerInfoRequest) error {
	if _, err := c.store.Save(ctx, req.Name, req.DOB, req.Name1); err != nil {
		logging.ErrorLogger.Error("owner info save failed", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}
