package application

// Transfer shapes exchanged with the transport layer. Field syntax
// (presence, lengths, email shape) is enforced here through binding tags;
// business rules (existence, uniqueness) live in the services.

type PropertyDTO struct {
	ID          int64   `json:"id"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Price       float64 `json:"price"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Description string  `json:"description,omitempty"`
}

// CreatePropertyInput carries no id; the database assigns one.
type CreatePropertyInput struct {
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Bedrooms    int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int     `json:"bathrooms" binding:"gte=0"`
	ImageURL    string  `json:"imageUrl" binding:"omitempty,url"`
	Description string  `json:"description"`
}

// UpdatePropertyInput replaces every field of the record except the id,
// which comes from the route. A partial body overwrites with zero values.
type UpdatePropertyInput struct {
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Bedrooms    int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int     `json:"bathrooms" binding:"gte=0"`
	ImageURL    string  `json:"imageUrl" binding:"omitempty,url"`
	Description string  `json:"description"`
}

// UserDTO doubles as registration input and output. Password is write-only:
// accepted on input, never populated on the way out.
type UserDTO struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password,omitempty" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"access_token"`
	Email    string `json:"email"`
	FullName string `json:"name"`
}
