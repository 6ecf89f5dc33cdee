package schedule

import "github.com/spride/spride-web/src/internal/model"

func trip(id int, route model.Route, dir model.Direction, at string) model.Trip {
	return model.Trip{ID: id, Route: route, Direction: dir, DepartureTime: at}
}

const (
	bs  = model.RouteBaekseok
	ss  = model.RouteSamsong
	ssw = model.RouteSamsongWithWonheung
	to  = model.DirectionToSchool
	frm = model.DirectionFromSchool
)

var timetable = []model.Trip{
	trip(1, bs, to, "08:20"), trip(2, bs, to, "08:25"), trip(3, bs, to, "08:30"),
	trip(4, bs, to, "08:40"), trip(5, bs, to, "09:00"), trip(6, bs, to, "09:20"),
	trip(7, bs, to, "09:25"), trip(8, bs, to, "09:30"), trip(9, bs, to, "10:00"),
	trip(10, bs, to, "10:15"), trip(11, bs, to, "10:25"), trip(12, bs, to, "11:00"),
	trip(13, bs, to, "12:00"), trip(14, bs, to, "14:00"),

	trip(15, bs, frm, "11:20"), trip(16, bs, frm, "13:20"), trip(17, bs, frm, "14:20"),
	trip(18, bs, frm, "15:20"), trip(19, bs, frm, "16:20"), trip(20, bs, frm, "16:30"),
	trip(21, bs, frm, "17:00"), trip(22, bs, frm, "17:20"), trip(23, bs, frm, "17:30"),
	trip(24, bs, frm, "18:20"),

	trip(25, ss, to, "08:20"), trip(26, ss, to, "08:35"), trip(27, ss, to, "08:40"),
	trip(28, ss, to, "09:00"), trip(29, ss, to, "09:10"), trip(30, ss, to, "09:30"),
	trip(31, ss, to, "10:10"), trip(32, ss, to, "10:30"), trip(33, ss, to, "11:20"),
	trip(34, ss, to, "13:20"), trip(35, ss, to, "14:20"), trip(36, ss, to, "15:20"),

	trip(37, ss, frm, "12:20"), trip(38, ss, frm, "13:20"), trip(39, ss, frm, "14:20"),
	trip(40, ss, frm, "15:20"), trip(41, ss, frm, "16:00"), trip(42, ss, frm, "16:20"),
	trip(43, ss, frm, "17:00"), trip(44, ss, frm, "17:20"),
	trip(45, ssw, frm, "17:30"), trip(46, ssw, frm, "18:10"), trip(47, ssw, frm, "18:20"),
	trip(48, ss, frm, "19:20"),
}

// Timetable returns a copy of the static trip list.
func Timetable() []model.Trip {
	return append([]model.Trip(nil), timetable...)
}

func Find(trips []model.Trip, id int) (model.Trip, bool) {
	for _, t := range trips {
		if t.ID == id {
			return t, true
		}
	}
	return model.Trip{}, false
}
