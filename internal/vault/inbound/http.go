package inbound

import (
	"context"

	"github.com/Codewith-Raja/securevault/internal/pkg/router"
	"github.com/Codewith-Raja/securevault/internal/vault/usecase"
)

type uc interface {
	Save(ctx context.Context, in usecase.SaveInput) error
	List(ctx context.Context, in usecase.ListInput) (*usecase.ListOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error
	Export(ctx context.Context) (*usecase.ExportOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/save-password", end.Save)
	r.GET("/get-passwords/:userId", end.List)

	// need authenticated
	r.DELETE("/delete-password/:id", end.Delete)
	r.GET("/account/export", end.Export)
}
