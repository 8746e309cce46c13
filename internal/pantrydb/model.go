package pantrydb

import "time"

// DefaultShelfLifeDays is the shelf life assigned to items whose expiry is
// unknown, whether from manual entry, scanning, or shopping-list promotion.
const DefaultShelfLifeDays = 7

// DefaultQuantity is the quantity assigned to items created without one.
const DefaultQuantity = "1 unit"

// InventoryItem represents a perishable item stored in a user's inventory.
// Items are never edited in place; they are created and eventually deleted
// when marked as used.
type InventoryItem struct {
	// ID is the unique identifier of the item, assigned by the store.
	ID string `firestore:"id" json:"id"`

	// Name is the name of the item.
	Name string `firestore:"name" json:"name"`

	// Quantity is the quantity of the item as free-form text, e.g. "2 pcs".
	Quantity string `firestore:"quantity" json:"quantity"`

	// ShelfLifeDays is the estimated number of days the item stays usable,
	// captured once at creation and never recalculated.
	ShelfLifeDays int `firestore:"shelfLifeDays" json:"shelfLifeDays"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`

	// OwnerID is the ID of the user owning the item.
	OwnerID string `firestore:"ownerId" json:"ownerId"`
}

// NewInventoryItem is the caller-supplied part of an inventory item. The
// store fills in the ID, owner and creation time on write.
type NewInventoryItem struct {
	// Name is the name of the item.
	Name string `json:"name"`

	// Quantity is the quantity of the item as free-form text.
	Quantity string `json:"quantity"`

	// ShelfLifeDays is the estimated shelf life in days.
	ShelfLifeDays int `json:"shelfLifeDays"`
}

// ShoppingListItem represents an entry on a user's shopping list.
type ShoppingListItem struct {
	// ID is the unique identifier of the entry, assigned by the store.
	ID string `firestore:"id" json:"id"`

	// Name is the name of the entry.
	Name string `firestore:"name" json:"name"`

	// Checked reports whether the entry has been checked off. Checking an
	// entry promotes it into the inventory; unchecking does not reverse that.
	Checked bool `firestore:"checked" json:"checked"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`

	// OwnerID is the ID of the user owning the entry.
	OwnerID string `firestore:"ownerId" json:"ownerId"`
}

// RecipeIngredient represents an ingredient in a cached recipe.
type RecipeIngredient struct {
	// Name is the name of the ingredient.
	Name string `firestore:"name" json:"name"`

	// Quantity is the quantity of the ingredient as free-form text.
	Quantity string `firestore:"quantity" json:"qty"`
}

// CachedRecipe represents an AI-suggested recipe persisted for a user. The
// cache is append-only between explicit clears; entries are never edited.
type CachedRecipe struct {
	// ID is the unique identifier of the recipe, assigned by the store.
	ID string `firestore:"id" json:"id"`

	// Title is the title of the recipe.
	Title string `firestore:"title" json:"title"`

	// Ingredients are the ingredients of the recipe, in order.
	Ingredients []RecipeIngredient `firestore:"ingredients" json:"ingredients"`

	// Instructions are the preparation instructions as free-form text.
	Instructions string `firestore:"instructions" json:"instructions"`

	// EstimatedTime is the estimated preparation time, e.g. "20 min".
	EstimatedTime string `firestore:"estimatedTime" json:"estimatedTime"`

	// MatchScore is how well the recipe matches the pantry, e.g. "90%".
	MatchScore string `firestore:"matchScore" json:"matchScore"`

	// AccentColor is the display accent color for the recipe card.
	AccentColor string `firestore:"accentColor" json:"accentColor"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`

	// OwnerID is the ID of the user owning the recipe.
	OwnerID string `firestore:"ownerId" json:"ownerId"`
}

// NewCachedRecipe is the generated part of a cached recipe before the store
// assigns its identity.
type NewCachedRecipe struct {
	Title         string             `json:"title"`
	Ingredients   []RecipeIngredient `json:"ingredients"`
	Instructions  string             `json:"instructions"`
	EstimatedTime string             `json:"time"`
	MatchScore    string             `json:"match"`
	AccentColor   string             `json:"color"`
}

// UserProfile is the denormalized display copy of a user's profile kept in
// the users collection. The name is the only field the app writes after
// signup; everything else is owned by the authentication provider.
type UserProfile struct {
	// Name is the display name of the user.
	Name string `firestore:"name" json:"name"`

	// Email is the email address of the user.
	Email string `firestore:"email" json:"email"`
}
