package usecase

// DetectDelimiter is exported for testing
var DetectDelimiter = detectDelimiter

// FindProject is exported for testing
var FindProject = findProject

// MissionDescription is exported for testing
var MissionDescription = missionDescription
