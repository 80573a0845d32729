package application

import "github.com/devsenior/property-service/internal/domain/entity"

// Explicit field-by-field mappers. The ignored fields are deliberate:
// ids and timestamps belong to the store, passwords never leave the service.

func toPropertyDTO(p *entity.Property) PropertyDTO {
	return PropertyDTO{
		ID:          p.ID,
		Address:     p.Address,
		City:        p.City,
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
}

func propertyFromCreate(in CreatePropertyInput) *entity.Property {
	// ID stays zero; the repository fills it on insert.
	return &entity.Property{
		Address:     in.Address,
		City:        in.City,
		Price:       in.Price,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
}

func propertyFromUpdate(id int64, in UpdatePropertyInput) *entity.Property {
	// The id always comes from the caller, never from the payload.
	return &entity.Property{
		ID:          id,
		Address:     in.Address,
		City:        in.City,
		Price:       in.Price,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
}

func toUserDTO(u *entity.User) UserDTO {
	// Password intentionally stripped.
	return UserDTO{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}
}

func userFromDTO(in UserDTO) *entity.User {
	// ID and timestamps stay zero; the store owns them.
	return &entity.User{
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
	}
}
