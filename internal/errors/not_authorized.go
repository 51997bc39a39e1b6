package errors

var ErrLocationNotOwned = New(ErrNotAuthorized, "location does not belong to task creator")
