package service

import (
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

func toMember(m models.Member) ledgerapi.Member {
	return ledgerapi.Member{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		CreatedAt: m.CreatedAt.Unix(),
	}
}

func toCategory(c models.Category) ledgerapi.Category {
	return ledgerapi.Category{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		IsDefault: c.IsDefault,
	}
}

func toCategories(categories []models.Category) []ledgerapi.Category {
	out := make([]ledgerapi.Category, len(categories))
	for i, c := range categories {
		out[i] = toCategory(c)
	}
	return out
}

func toGroup(g *models.Group) ledgerapi.Group {
	members := make([]ledgerapi.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = toMember(m)
	}
	return ledgerapi.Group{
		ID:         g.ID,
		Name:       g.Name,
		Color:      g.Color,
		Members:    members,
		Categories: toCategories(g.Categories),
		CreatedAt:  g.CreatedAt.Unix(),
		UpdatedAt:  g.UpdatedAt.Unix(),
	}
}

// toSplits converts splits; group may be nil when names are not needed.
func toSplits(group *models.Group, splits []models.ExpenseSplit) []ledgerapi.Split {
	out := make([]ledgerapi.Split, len(splits))
	for i, split := range splits {
		out[i] = ledgerapi.Split{MemberID: split.MemberID, Amount: split.Amount}
		if group != nil {
			out[i].MemberName = group.MemberName(split.MemberID)
		}
		if split.Percentage.Valid {
			out[i].Percentage = split.Percentage.Decimal.String()
		}
	}
	return out
}

func toExpense(group *models.Group, e models.Expense) ledgerapi.Expense {
	rec := e.Record()
	out := ledgerapi.Expense{
		ID:                rec.ID,
		GroupID:           rec.GroupID,
		Description:       rec.Description,
		Amount:            rec.Amount,
		Date:              rec.Date.Unix(),
		PaidByMemberID:    rec.PaidByMemberID,
		PaidByName:        group.MemberName(rec.PaidByMemberID),
		CategoryID:        rec.CategoryID,
		CreatedByMemberID: rec.CreatedByMemberID,
		Type:              string(e.Type()),
		IsSettlement:      rec.IsSettlement,
		Splits:            toSplits(group, e.Shares()),
		CreatedAt:         rec.CreatedAt.Unix(),
		UpdatedAt:         rec.UpdatedAt.Unix(),
	}
	switch exp := e.(type) {
	case *models.SharedExpense:
		out.SplitMethod = string(exp.Method)
	case *models.PersonalExpense:
		out.IsIncome = exp.IsIncome
	}
	return out
}

func toSettlement(group *models.Group, s models.Settlement) ledgerapi.Settlement {
	return ledgerapi.Settlement{
		ID:           s.ID,
		GroupID:      s.GroupID,
		FromMemberID: s.FromMemberID,
		FromName:     group.MemberName(s.FromMemberID),
		ToMemberID:   s.ToMemberID,
		ToName:       group.MemberName(s.ToMemberID),
		Amount:       s.Amount,
		Date:         s.Date.Unix(),
		CreatedAt:    s.CreatedAt.Unix(),
		Note:         s.Note,
	}
}

func toDebt(group *models.Group, d models.Debt) ledgerapi.Debt {
	return ledgerapi.Debt{
		FromMemberID: d.FromMemberID,
		FromName:     group.MemberName(d.FromMemberID),
		ToMemberID:   d.ToMemberID,
		ToName:       group.MemberName(d.ToMemberID),
		Amount:       d.Amount,
	}
}
