package armybook

import (
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
)

const (
	errUIDEmpty       = "cannot be empty"
	errRequesterEmpty = "cannot be empty"
	errBookNil        = "army book cannot be nil"
	errNotFound       = "army book not found"
	errNotOwner       = "army book is owned by another user"
)

// mutation applies a save to a loaded book
type mutation func(book *entities.ArmyBook)

func validateKey(uid, requesterID string) error {
	vb := errors.NewValidationBuilder()
	if uid == "" {
		vb.Field("uid", errUIDEmpty)
	}
	if requesterID == "" {
		vb.Field("requester_id", errRequesterEmpty)
	}
	return vb.Build()
}

func validateNew(book *entities.ArmyBook) error {
	if book == nil {
		return errors.InvalidArgument(errBookNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("uid", book.UID, vb)
	errors.ValidateRequired("user_id", book.UserID, vb)
	errors.ValidateRequired("name", book.Name, vb)
	return vb.Build()
}

func notFound(uid string) error {
	return errors.NotFound(errNotFound).WithMeta("army_book_uid", uid)
}

func notOwner(uid string) error {
	return errors.PermissionDenied(errNotOwner).WithMeta("army_book_uid", uid)
}

// stamp records a write at now
func stamp(book *entities.ArmyBook, now time.Time) {
	book.ModifiedAt = now.UTC()
	book.Revision++
}

func setUnits(units []*entities.Unit) mutation {
	return func(book *entities.ArmyBook) {
		book.Units = entities.CloneUnits(units)
	}
}

func setUpgradePackages(packages []*entities.UpgradePackage) mutation {
	return func(book *entities.ArmyBook) {
		book.UpgradePackages = entities.ClonePackages(packages)
	}
}

func setSpecialRules(rules []*entities.SpecialRule) mutation {
	return func(book *entities.ArmyBook) {
		if rules == nil {
			book.SpecialRules = nil
			return
		}
		out := make([]*entities.SpecialRule, len(rules))
		for i, r := range rules {
			out[i] = r.Clone()
		}
		book.SpecialRules = out
	}
}

func setMetadata(meta entities.ArmyBookMetadata) mutation {
	return func(book *entities.ArmyBook) {
		meta.Apply(book)
	}
}

func validateMetadata(meta entities.ArmyBookMetadata) error {
	if meta.IsEmpty() {
		return errors.InvalidArgument("metadata update changes nothing")
	}
	if meta.Name != nil && strings.TrimSpace(*meta.Name) == "" {
		return errors.InvalidArgument("name cannot be empty")
	}
	return nil
}

// sortByName orders public listings
func sortByName(books []*entities.ArmyBook) {
	sort.Slice(books, func(i, j int) bool {
		if books[i].Name != books[j].Name {
			return books[i].Name < books[j].Name
		}
		return books[i].UID < books[j].UID
	})
}

// sortByModified orders owner listings, newest first
func sortByModified(books []*entities.ArmyBook) {
	sort.Slice(books, func(i, j int) bool {
		if !books[i].ModifiedAt.Equal(books[j].ModifiedAt) {
			return books[i].ModifiedAt.After(books[j].ModifiedAt)
		}
		return books[i].UID < books[j].UID
	})
}

func setCosts(units []*entities.Unit, packages []*entities.UpgradePackage) mutation {
	return func(book *entities.ArmyBook) {
		setUnits(units)(book)
		setUpgradePackages(packages)(book)
	}
}
