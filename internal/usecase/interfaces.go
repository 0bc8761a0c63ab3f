package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

// ImageResolver turns stored image references into fetchable URLs and
// warms them ahead of a page render.
type ImageResolver interface {
	ResolveImageURL(ref string) string
	Prefetch(ctx context.Context, ref string) error
}
