package bus

// Topic names for entity change notifications. One topic per entity per
// mutation kind; bulk deletes do not publish.
const (
	TopicUserCreated = "userCreated"
	TopicUserUpdated = "userUpdated"
	TopicUserDeleted = "userDeleted"

	TopicEventCreated = "eventCreated"
	TopicEventUpdated = "eventUpdated"
	TopicEventDeleted = "eventDeleted"

	TopicLocationCreated = "locationCreated"
	TopicLocationUpdated = "locationUpdated"
	TopicLocationDeleted = "locationDeleted"

	TopicParticipantAdded   = "participantAdded"
	TopicParticipantUpdated = "participantUpdated"
	TopicParticipantDeleted = "participantDeleted"
)
