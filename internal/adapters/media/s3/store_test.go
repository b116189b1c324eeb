package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-finder/internal/domain/reports"
)

type fakeAPI struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestStore_Put(t *testing.T) {
	api := &fakeAPI{}
	store := NewWithAPI(api, "pet-photos")

	ref, err := store.Put(context.Background(), "/lost-pets/abc", "image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "s3://pet-photos/lost-pets/abc", ref)

	assert.Equal(t, "pet-photos", aws.ToString(api.in.Bucket))
	assert.Equal(t, "lost-pets/abc", aws.ToString(api.in.Key))
	assert.Equal(t, "image/png", aws.ToString(api.in.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(api.in.ContentLength))
	assert.Equal(t, []byte{1, 2, 3}, api.body)
}

func TestStore_PutErrors(t *testing.T) {
	store := NewWithAPI(&fakeAPI{err: errors.New("access denied")}, "b")

	_, err := store.Put(context.Background(), "k", "image/png", nil)
	assert.ErrorContains(t, err, "access denied")

	_, err = store.Put(context.Background(), "  ", "image/png", nil)
	assert.Error(t, err)
}

func TestStore_WithStorePhoto(t *testing.T) {
	api := &fakeAPI{}
	store := NewWithAPI(api, "b")

	ref, err := reports.StorePhoto(context.Background(), store, "sightings/s1", "data:image/jpeg;base64,AQID")
	require.NoError(t, err)
	assert.Equal(t, "s3://b/sightings/s1", ref)
	assert.Equal(t, "image/jpeg", aws.ToString(api.in.ContentType))
	assert.Equal(t, []byte{1, 2, 3}, api.body)
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Options{})
	assert.Error(t, err)
}
