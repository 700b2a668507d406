package commands_test

import (
	"errors"
	"testing"

	"seeder/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurgeSeedDataCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPurgeSeedDataCommand()

	repo := new(MockOrderRecordRepository)
	uow := new(MockOrderRecordUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRecordRepository").Return(repo).Once(),
		repo.On("PurgeAll", ctx).Return(int64(42), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeSeedDataCommandHandler(factory)
	purged, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), purged)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPurgeSeedDataCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PurgeSeedDataCommand{} // not constructed properly

	factory := new(MockOrderRecordUoWFactory)
	handler := commands.NewPurgeSeedDataCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPurgeSeedDataCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPurgeSeedDataCommandHandler_Handle_PurgeError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPurgeSeedDataCommand()

	repo := new(MockOrderRecordRepository)
	uow := new(MockOrderRecordUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRecordRepository").Return(repo).Once(),
		repo.On("PurgeAll", ctx).Return(int64(0), errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeSeedDataCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestPurgeSeedDataCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPurgeSeedDataCommand()

	repo := new(MockOrderRecordRepository)
	uow := new(MockOrderRecordUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRecordRepository").Return(repo).Once(),
		repo.On("PurgeAll", ctx).Return(int64(7), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderRecordUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeSeedDataCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
