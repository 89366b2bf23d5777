package dto

// UpdateProfileRequest uses pointers so an absent field leaves the stored
// value alone while an empty string clears it.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	PhoneNo   *string `json:"phoneNo"`
	CWID      *string `json:"CWID"`
	Location  *string `json:"location"`
}

type MealPointsRequest struct {
	Points float64 `json:"points"`
}

type MealPointsResponse struct {
	MealPoints float64 `json:"mealPoints"`
}
