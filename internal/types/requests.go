package types

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	Age       *int     `json:"age" binding:"omitempty,min=0,max=150"`
	Gender    string   `json:"gender"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddFavoriteRequest is the body of POST /api/favorite/addFavorite
type AddFavoriteRequest struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}

// AddRatingRequest is the body of POST /api/rating/addRating/:userId.
// The web client sends the score as userRating.
type AddRatingRequest struct {
	RecipeID   int64 `json:"recipeId"`
	Rating     *int  `json:"rating"`
	UserRating *int  `json:"userRating"`
}

// Value returns the submitted score, or nil when neither field was sent.
func (r *AddRatingRequest) Value() *int {
	if r.Rating != nil {
		return r.Rating
	}
	return r.UserRating
}

// Preferences are the saved search filters of a user
type Preferences struct {
	Dietary   []string `json:"dietary"`
	Allergies []string `json:"allergies"`
	Cuisine   []string `json:"cuisine"`
}

// Empty reports whether no filter is set
func (p *Preferences) Empty() bool {
	return p == nil || len(p.Dietary)+len(p.Allergies)+len(p.Cuisine) == 0
}

// SearchQuery carries the filters forwarded to the recommendation service
type SearchQuery struct {
	UserID      int64    `form:"user_id"`
	Ingredients string   `form:"ingredients"`
	Dietary     []string `form:"dietary"`
	Allergies   []string `form:"allergies"`
	Cuisine     []string `form:"cuisine"`
	MaxCalories *int     `form:"max_calories" binding:"omitempty,min=1"`
	MaxCookTime *int     `form:"max_cook_time" binding:"omitempty,min=1"`
}

// ApplyDefaults fills filters the caller left empty from saved preferences
func (q *SearchQuery) ApplyDefaults(p *Preferences) {
	if p == nil {
		return
	}
	if len(q.Dietary) == 0 {
		q.Dietary = p.Dietary
	}
	if len(q.Allergies) == 0 {
		q.Allergies = p.Allergies
	}
	if len(q.Cuisine) == 0 {
		q.Cuisine = p.Cuisine
	}
}
