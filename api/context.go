package api

import (
	"context"
)

type keyType string

const adminSubjectKey keyType = "adminSubject"

// ctxWithAdminSubject records the authenticated admin subject on the context
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// ctxGetAdminSubject retrieves the admin subject set by the auth middleware
func ctxGetAdminSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminSubjectKey).(string)
	return subject, ok && subject != ""
}
