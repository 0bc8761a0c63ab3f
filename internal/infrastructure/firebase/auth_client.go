package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) GetUserByEmail(ctx context.Context, email string) (string, string, error) {
	user, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}

	displayName := ""
	if user.UserInfo != nil {
		displayName = user.DisplayName
	}
	return user.UID, displayName, nil
}

func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	iter := f.client.Users(ctx, "")
	_, err := iter.Next()
	if err != nil && err != iterator.Done {
		return err
	}
	return nil
}
