// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	renderermock "github.com/KirkDiggler/armybook-api/internal/clients/renderer/mock"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	armybookrepo "github.com/KirkDiggler/armybook-api/internal/repositories/armybook"
	armybookrepomock "github.com/KirkDiggler/armybook-api/internal/repositories/armybook/mock"
)

// ExpectArmyBookLoad sets up the repository to return book for the requester
func ExpectArmyBookLoad(ctx context.Context, repo *armybookrepomock.MockRepository, book *entities.ArmyBook, requesterID string) {
	repo.EXPECT().
		Get(ctx, armybookrepo.GetInput{UID: book.UID, RequesterID: requesterID}).
		Return(&armybookrepo.GetOutput{ArmyBook: book.Clone()}, nil)
}

// ExpectRender sets up a single successful render of flavouredUID
func ExpectRender(mockClient *renderermock.MockClient, flavouredUID string, pdf []byte) {
	mockClient.EXPECT().
		Render(gomock.Any(), flavouredUID).
		Return(pdf, nil).
		Times(1)
	mockClient.EXPECT().
		Service().
		Return("html2pdf.app").
		AnyTimes()
}
