package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dzoniops/room-booking-service/api"
	"github.com/dzoniops/room-booking-service/booking"
	"github.com/dzoniops/room-booking-service/models"
	"github.com/dzoniops/room-booking-service/utils"
)

type Server struct {
	pb.UnimplementedReservationServiceServer
	Manager *booking.Manager
}

type guestInput struct {
	ID    string `validate:"omitempty,uuid"`
	Name  string `validate:"max=200"`
	Adult bool
}

type reserveInput struct {
	UserID        int64        `validate:"required"`
	RoomID        int64        `validate:"required"`
	Accommodation time.Time    `validate:"required,notpast"`
	Release       time.Time    `validate:"required,gtfield=Accommodation"`
	Guests        []guestInput `validate:"dive"`
}

type updateInput struct {
	ID            int64        `validate:"required"`
	ActorID       int64        `validate:"required"`
	Accommodation time.Time    `validate:"required,notpast"`
	Release       time.Time    `validate:"required,gtfield=Accommodation"`
	Guests        []guestInput `validate:"dive"`
}

type pageInput struct {
	Page     int32 `validate:"gte=0"`
	PageSize int32 `validate:"gte=0,lte=500"`
}

func (s *Server) Reserve(c context.Context, req *pb.ReserveRequest) (*pb.ReservationResponse, error) {
	in := reserveInput{
		UserID:        req.UserId,
		RoomID:        req.RoomId,
		Accommodation: asTime(req.Accommodation),
		Release:       asTime(req.Release),
		Guests:        guestInputs(req.Guests),
	}
	if err := utils.Validate.Struct(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	reservation, err := s.Manager.Create(c, booking.CreateRequest{
		RoomID:        in.RoomID,
		Accommodation: in.Accommodation,
		Release:       in.Release,
		Addons:        booking.Addons{AllInclusive: req.AllInclusive, Breakfast: req.Breakfast},
		Guests:        guestsFromPb(in.Guests),
		OwnerID:       in.UserID,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationResponse{Reservation: mapToPb(reservation)}, nil
}

func (s *Server) Update(c context.Context, req *pb.UpdateRequest) (*pb.ReservationResponse, error) {
	in := updateInput{
		ID:            req.Id,
		ActorID:       req.ActorId,
		Accommodation: asTime(req.Accommodation),
		Release:       asTime(req.Release),
		Guests:        guestInputs(req.Guests),
	}
	if err := utils.Validate.Struct(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	reservation, err := s.Manager.Update(c, in.ID, booking.UpdateRequest{
		Accommodation: in.Accommodation,
		Release:       in.Release,
		Addons:        booking.Addons{AllInclusive: req.AllInclusive, Breakfast: req.Breakfast},
		Guests:        guestsFromPb(in.Guests),
		ActorID:       in.ActorID,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationResponse{Reservation: mapToPb(reservation)}, nil
}

func (s *Server) Delete(c context.Context, req *pb.IdRequest) (*pb.DeleteResponse, error) {
	if err := utils.Validate.Var(req.Id, "required"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	deleted, err := s.Manager.Delete(c, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteResponse{Deleted: deleted}, nil
}

func (s *Server) Get(c context.Context, req *pb.IdRequest) (*pb.ReservationResponse, error) {
	if err := utils.Validate.Var(req.Id, "required"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	reservation, err := booking.GetAs(c, s.Manager, req.Id, mapToPb)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationResponse{Reservation: reservation}, nil
}

func (s *Server) UserReservations(
	c context.Context,
	req *pb.UserReservationsRequest,
) (*pb.ReservationsResponse, error) {
	if err := utils.Validate.Var(req.UserId, "required"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	page, err := pageOf(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	reservations, err := booking.ListForUser(c, s.Manager, req.UserId, page, mapToPb)
	if err != nil {
		return nil, toStatus(err)
	}
	total, err := s.Manager.CountForUser(c, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationsResponse{Reservations: reservations, Total: total}, nil
}

func (s *Server) Reservations(c context.Context, req *pb.PageRequest) (*pb.ReservationsResponse, error) {
	page, err := pageOf(req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	reservations, err := booking.ListAll(c, s.Manager, page, mapToPb)
	if err != nil {
		return nil, toStatus(err)
	}
	total, err := s.Manager.Count(c)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReservationsResponse{Reservations: reservations, Total: total}, nil
}

func pageOf(number, size int32) (booking.Page, error) {
	if err := utils.Validate.Struct(pageInput{Page: number, PageSize: size}); err != nil {
		return booking.Page{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return booking.Page{Number: int(number), Size: int(size)}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidWindow), errors.Is(err, booking.ErrGuestConflict):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, booking.ErrResourceNotFound), errors.Is(err, booking.ErrReservationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, booking.ErrSchedulingConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, booking.ErrCapacityExceeded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, booking.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, booking.ErrLockUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// asTime leaves a missing timestamp as the zero time so that "required" fails.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func guestInputs(in []*pb.Guest) []guestInput {
	guests := make([]guestInput, len(in))
	for i, g := range in {
		guests[i] = guestInput{ID: g.GetId(), Name: g.GetName(), Adult: g.GetAdult()}
	}
	return guests
}

// guestsFromPb expects validated input; ids are known to parse.
func guestsFromPb(in []guestInput) []models.Guest {
	guests := make([]models.Guest, len(in))
	for i, g := range in {
		guests[i] = models.Guest{Name: g.Name, Adult: g.Adult}
		if g.ID != "" {
			guests[i].ID = uuid.MustParse(g.ID)
		}
	}
	return guests
}

func mapToPb(in *models.Reservation) *pb.Reservation {
	guests := make([]*pb.Guest, len(in.Guests))
	for i, g := range in.Guests {
		guests[i] = &pb.Guest{Id: g.ID.String(), Name: g.Name, Adult: g.Adult}
	}
	return &pb.Reservation{
		Id:            in.ID,
		RoomId:        in.RoomID,
		OwnerId:       in.OwnerID,
		Accommodation: timestamppb.New(in.Accommodation),
		Release:       timestamppb.New(in.Release),
		AllInclusive:  in.AllInclusive,
		Breakfast:     in.Breakfast,
		Price:         in.Price,
		Guests:        guests,
	}
}
