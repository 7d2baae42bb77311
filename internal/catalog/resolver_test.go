package catalog_test

import (
	"context"
	"errors"
	"testing"

	"bookloader/internal/catalog"
	"bookloader/internal/catalog/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Names(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		ids       []string
		setupMock func(m *mocks.MockAuthorRepository)
		want      []string
		wantErr   bool
	}{
		{
			name: "found author",
			ids:  []string{"OL1A"},
			setupMock: func(m *mocks.MockAuthorRepository) {
				m.EXPECT().FindAuthorByID(gomock.Any(), "OL1A").Return(catalog.Author{ID: "OL1A", Name: "Jane Doe"}, nil)
			},
			want: []string{"Jane Doe"},
		},
		{
			name: "missing author resolves to sentinel",
			ids:  []string{"OL1A"},
			setupMock: func(m *mocks.MockAuthorRepository) {
				m.EXPECT().FindAuthorByID(gomock.Any(), "OL1A").Return(catalog.Author{}, catalog.ErrNotFound)
			},
			want: []string{catalog.UnknownAuthor},
		},
		{
			name: "order and length follow input, duplicates looked up again",
			ids:  []string{"OL2A", "OL9A", "OL2A"},
			setupMock: func(m *mocks.MockAuthorRepository) {
				gomock.InOrder(
					m.EXPECT().FindAuthorByID(gomock.Any(), "OL2A").Return(catalog.Author{ID: "OL2A", Name: "Second"}, nil),
					m.EXPECT().FindAuthorByID(gomock.Any(), "OL9A").Return(catalog.Author{}, catalog.ErrNotFound),
					m.EXPECT().FindAuthorByID(gomock.Any(), "OL2A").Return(catalog.Author{ID: "OL2A", Name: "Second"}, nil),
				)
			},
			want: []string{"Second", catalog.UnknownAuthor, "Second"},
		},
		{
			name:      "no ids",
			ids:       []string{},
			setupMock: func(m *mocks.MockAuthorRepository) {},
			want:      []string{},
		},
		{
			name: "store failure is returned",
			ids:  []string{"OL1A", "OL2A"},
			setupMock: func(m *mocks.MockAuthorRepository) {
				m.EXPECT().FindAuthorByID(gomock.Any(), "OL1A").Return(catalog.Author{}, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mocks.NewMockAuthorRepository(ctrl)
			tt.setupMock(repo)

			got, err := catalog.NewResolver(repo).Names(ctx, tt.ids)
			if tt.wantErr {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, catalog.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.ids))
		})
	}
}
