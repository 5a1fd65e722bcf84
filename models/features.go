package models

// FeatureSet is the fixed catalogue of boolean property features. Clients use
// the same schema to express preferences: a true flag means "must be present
// to count as a match", false (or an absent key on the wire) means no
// preference. Keeping this a closed struct rather than an open string map
// means the scorer's flag walk breaks at compile time when the catalogue
// changes.
type FeatureSet struct {
	Pool              bool `bson:"pool" json:"pool,omitempty"`
	Garden            bool `bson:"garden" json:"garden,omitempty"`
	Elevator          bool `bson:"elevator" json:"elevator,omitempty"`
	Parking           bool `bson:"parking" json:"parking,omitempty"`
	Garage            bool `bson:"garage" json:"garage,omitempty"`
	Balcony           bool `bson:"balcony" json:"balcony,omitempty"`
	Terrace           bool `bson:"terrace" json:"terrace,omitempty"`
	StorageRoom       bool `bson:"storageRoom" json:"storageRoom,omitempty"`
	Basement          bool `bson:"basement" json:"basement,omitempty"`
	Attic             bool `bson:"attic" json:"attic,omitempty"`
	Fireplace         bool `bson:"fireplace" json:"fireplace,omitempty"`
	AirConditioning   bool `bson:"airConditioning" json:"airConditioning,omitempty"`
	CentralHeating    bool `bson:"centralHeating" json:"centralHeating,omitempty"`
	AutonomousHeating bool `bson:"autonomousHeating" json:"autonomousHeating,omitempty"`
	SolarWaterHeater  bool `bson:"solarWaterHeater" json:"solarWaterHeater,omitempty"`
	SecurityDoor      bool `bson:"securityDoor" json:"securityDoor,omitempty"`
	Alarm             bool `bson:"alarm" json:"alarm,omitempty"`
	Furnished         bool `bson:"furnished" json:"furnished,omitempty"`
	Renovated         bool `bson:"renovated" json:"renovated,omitempty"`
	NewlyBuilt        bool `bson:"newlyBuilt" json:"newlyBuilt,omitempty"`
	SeaView           bool `bson:"seaView" json:"seaView,omitempty"`
	MountainView      bool `bson:"mountainView" json:"mountainView,omitempty"`
	Penthouse         bool `bson:"penthouse" json:"penthouse,omitempty"`
	CornerLot         bool `bson:"cornerLot" json:"cornerLot,omitempty"`
	Accessible        bool `bson:"accessible" json:"accessible,omitempty"`
	PetsAllowed       bool `bson:"petsAllowed" json:"petsAllowed,omitempty"`
	Bright            bool `bson:"bright" json:"bright,omitempty"`
}

// NumFeatures is the size of the feature catalogue.
const NumFeatures = 27

// Flags returns the feature values in a fixed order. The array length pins
// the catalogue size so a new field cannot be added without updating this
// walk.
func (f FeatureSet) Flags() [NumFeatures]bool {
	return [NumFeatures]bool{
		f.Pool,
		f.Garden,
		f.Elevator,
		f.Parking,
		f.Garage,
		f.Balcony,
		f.Terrace,
		f.StorageRoom,
		f.Basement,
		f.Attic,
		f.Fireplace,
		f.AirConditioning,
		f.CentralHeating,
		f.AutonomousHeating,
		f.SolarWaterHeater,
		f.SecurityDoor,
		f.Alarm,
		f.Furnished,
		f.Renovated,
		f.NewlyBuilt,
		f.SeaView,
		f.MountainView,
		f.Penthouse,
		f.CornerLot,
		f.Accessible,
		f.PetsAllowed,
		f.Bright,
	}
}
