package models

// UnknownMemberName is displayed for member ids missing from a group.
const UnknownMemberName = "Unknown"

// Member is a person inside a group.
type Member struct {
	// ID is unique within the group.
	ID string

	// Name is the display name. Mutable.
	Name string

	// Color is a presentation tag (hex color). Mutable.
	Color string

	// CreatedAt is when the member joined the group.
	CreatedAt Timestamp
}

// Category groups expenses for reporting. It plays no part in balances.
type Category struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	IsDefault bool
}

// Group is the aggregate owning members, categories, expenses and settlements.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski trip").
	Name string

	// Color is an optional presentation tag.
	Color string

	// Members are kept in join order; that order drives balance listings.
	Members []Member

	// Categories available for this group's expenses.
	Categories []Category

	CreatedAt Timestamp
	UpdatedAt Timestamp
}

// Member looks up a member by id.
func (g *Group) Member(id string) (Member, bool) {
	for _, m := range g.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// HasMember reports whether id belongs to the group.
func (g *Group) HasMember(id string) bool {
	_, ok := g.Member(id)
	return ok
}

// MemberName returns the member's display name, or UnknownMemberName.
func (g *Group) MemberName(id string) string {
	if m, ok := g.Member(id); ok {
		return m.Name
	}
	return UnknownMemberName
}

// MemberColors is the palette assigned to members in join order.
var MemberColors = []string{
	"#3B82F6", "#EF4444", "#10B981", "#F59E0B",
	"#8B5CF6", "#EC4899", "#06B6D4", "#F97316",
	"#6366F1", "#14B8A6", "#E11D48", "#84CC16",
}

// MemberColor picks the palette color for the i-th member, wrapping around.
func MemberColor(i int) string {
	if i < 0 {
		i = -i
	}
	return MemberColors[i%len(MemberColors)]
}

// DefaultCategories returns the category set seeded into new groups.
// IDs are left empty for the store to assign.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food", Icon: "\U0001F355", Color: "#F97316", IsDefault: true},
		{Name: "Transport", Icon: "\U0001F697", Color: "#3B82F6", IsDefault: true},
		{Name: "Housing", Icon: "\U0001F3E0", Color: "#8B5CF6", IsDefault: true},
		{Name: "Utilities", Icon: "\U0001F4A1", Color: "#EAB308", IsDefault: true},
		{Name: "Entertainment", Icon: "\U0001F3AC", Color: "#EC4899", IsDefault: true},
		{Name: "Shopping", Icon: "\U0001F6D2", Color: "#10B981", IsDefault: true},
		{Name: "Health", Icon: "\U0001F48A", Color: "#EF4444", IsDefault: true},
		{Name: "Other", Icon: "\U0001F4E6", Color: "#6B7280", IsDefault: true},
	}
}
