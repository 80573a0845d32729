package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devsenior/property-service/internal/domain/entity"
)

func TestToPropertyDTO(t *testing.T) {
	p := &entity.Property{
		ID:          1,
		Address:     "Calle Mayor 123",
		City:        "Madrid",
		Price:       250000.0,
		Bedrooms:    3,
		Bathrooms:   2,
		ImageURL:    "https://example.com/image.jpg",
		Description: "Hermosa casa en el centro",
	}
	dto := toPropertyDTO(p)
	assert.Equal(t, PropertyDTO{
		ID:          1,
		Address:     "Calle Mayor 123",
		City:        "Madrid",
		Price:       250000.0,
		Bedrooms:    3,
		Bathrooms:   2,
		ImageURL:    "https://example.com/image.jpg",
		Description: "Hermosa casa en el centro",
	}, dto)
}

func TestPropertyFromCreate_LeavesIDUnset(t *testing.T) {
	p := propertyFromCreate(CreatePropertyInput{Address: "a", City: "c", Price: 1})
	assert.Zero(t, p.ID)
	assert.Equal(t, "a", p.Address)
}

func TestPropertyFromUpdate_ForcesID(t *testing.T) {
	p := propertyFromUpdate(9, UpdatePropertyInput{Address: "a", City: "c"})
	assert.EqualValues(t, 9, p.ID)
}

func TestToUserDTO_StripsPassword(t *testing.T) {
	u := &entity.User{
		ID:        4,
		FullName:  "Carlos Diaz",
		Email:     "carlos@example.com",
		Password:  "secret123",
		CreatedAt: time.Now(),
	}
	dto := toUserDTO(u)
	assert.EqualValues(t, 4, dto.ID)
	assert.Equal(t, "Carlos Diaz", dto.FullName)
	assert.Equal(t, "carlos@example.com", dto.Email)
	assert.Empty(t, dto.Password)
}

func TestUserFromDTO_IgnoresIDAndTimestamps(t *testing.T) {
	u := userFromDTO(UserDTO{
		ID:       77, // must be ignored
		FullName: "Carlos Diaz",
		Email:    "carlos@example.com",
		Password: "secret123",
	})
	assert.Zero(t, u.ID)
	assert.True(t, u.CreatedAt.IsZero())
	assert.True(t, u.UpdatedAt.IsZero())
	assert.Equal(t, "secret123", u.Password)
}
