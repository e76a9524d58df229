package client

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"
)

func TestMessageClientConnectRoundTrip(t *testing.T) {
	b := flatbuffers.NewBuilder(64)

	ConnectDataStart(b)
	ConnectDataAddSerialNumber(b, 12345)
	ConnectDataAddId(b, 7)
	ConnectDataAddConnectionType(b, ConnectionTypeNORMAL)
	data := ConnectDataEnd(b)

	MessageClientStart(b)
	MessageClientAddType(b, MessageTypeCONNECT)
	MessageClientAddDataType(b, MessageDataConnectData)
	MessageClientAddData(b, data)
	b.Finish(MessageClientEnd(b))

	msg := GetRootAsMessageClient(b.FinishedBytes(), 0)
	require.Equal(t, MessageTypeCONNECT, msg.Type())
	require.Equal(t, MessageDataConnectData, msg.DataType())

	var tbl flatbuffers.Table
	require.True(t, msg.Data(&tbl))
	var cd ConnectData
	cd.Init(tbl.Bytes, tbl.Pos)
	require.Equal(t, uint32(12345), cd.SerialNumber())
	require.Equal(t, uint32(7), cd.Id())
	require.Equal(t, ConnectionTypeNORMAL, cd.ConnectionType())
}

func TestWindowConfigurationRoundTrip(t *testing.T) {
	b := flatbuffers.NewBuilder(256)

	var offs []flatbuffers.UOffsetT
	for i := int32(0); i < 4; i++ {
		ConstraintStart(b)
		ConstraintAddX0(b, i*10)
		ConstraintAddY0(b, i*10+1)
		ConstraintAddX1(b, i*10+2)
		ConstraintAddY1(b, i*10+3)
		offs = append(offs, ConstraintEnd(b))
	}
	WindowConfigurationDataStartConstraintsVector(b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	vec := b.EndVector(len(offs))

	WindowConfigurationDataStart(b)
	WindowConfigurationDataAddCameraPort(b, 1)
	WindowConfigurationDataAddLaserPort(b, 0)
	WindowConfigurationDataAddConstraints(b, vec)
	b.Finish(WindowConfigurationDataEnd(b))

	wc := GetRootAsWindowConfigurationData(b.FinishedBytes(), 0)
	require.Equal(t, uint32(1), wc.CameraPort())
	require.Equal(t, uint32(0), wc.LaserPort())
	require.Equal(t, 4, wc.ConstraintsLength())

	var c Constraint
	require.True(t, wc.Constraints(&c, 2))
	require.Equal(t, int32(20), c.X0())
	require.Equal(t, int32(21), c.Y0())
	require.Equal(t, int32(22), c.X1())
	require.Equal(t, int32(23), c.Y1())
}

func TestScanConfigurationRoundTrip(t *testing.T) {
	b := flatbuffers.NewBuilder(256)

	CameraLaserConfigurationStart(b)
	CameraLaserConfigurationAddCameraPort(b, 1)
	CameraLaserConfigurationAddLaserPort(b, 0)
	CameraLaserConfigurationAddLaserOnTimeMinNs(b, 100_000)
	CameraLaserConfigurationAddLaserOnTimeDefNs(b, 500_000)
	CameraLaserConfigurationAddLaserOnTimeMaxNs(b, 1_000_000)
	CameraLaserConfigurationAddScanEndOffsetNs(b, 510_000)
	CameraLaserConfigurationAddCameraOrientation(b, CameraOrientationDOWNSTREAM)
	pair := CameraLaserConfigurationEnd(b)

	ScanConfigurationDataStartCameraLaserConfigurationsVector(b, 1)
	b.PrependUOffsetT(pair)
	vec := b.EndVector(1)

	ScanConfigurationDataStart(b)
	ScanConfigurationDataAddDataTypeMask(b, 0x3)
	ScanConfigurationDataAddDataStride(b, 1)
	ScanConfigurationDataAddScanPeriodNs(b, 2_000_000)
	ScanConfigurationDataAddLaserDetectionThreshold(b, 120)
	ScanConfigurationDataAddSaturationThreshold(b, 800)
	ScanConfigurationDataAddSaturationPercent(b, 30)
	ScanConfigurationDataAddCameraLaserConfigurations(b, vec)
	b.Finish(ScanConfigurationDataEnd(b))

	sc := GetRootAsScanConfigurationData(b.FinishedBytes(), 0)
	require.Equal(t, uint32(0x3), sc.DataTypeMask())
	require.Equal(t, uint32(2_000_000), sc.ScanPeriodNs())
	require.Equal(t, 1, sc.CameraLaserConfigurationsLength())

	var clc CameraLaserConfiguration
	require.True(t, sc.CameraLaserConfigurations(&clc, 0))
	require.Equal(t, uint32(510_000), clc.ScanEndOffsetNs())
	require.Equal(t, CameraOrientationDOWNSTREAM, clc.CameraOrientation())
}

func TestSpecificationBuildMatchesEmbeddedLayout(t *testing.T) {
	b := flatbuffers.NewBuilder(256)

	typeStr := b.CreateString("JS-50 WX")

	ScanHeadSpecificationStartCameraPortToIdVector(b, 2)
	b.PrependUint32(1)
	b.PrependUint32(2)
	cams := b.EndVector(2)

	ScanHeadSpecificationStartLaserPortToIdVector(b, 1)
	b.PrependUint32(1)
	lasers := b.EndVector(1)

	ScanHeadSpecificationStartConfigurationGroupsVector(b, 2)
	CreateConfigurationGroup(b, 1, 0)
	CreateConfigurationGroup(b, 0, 0)
	groups := b.EndVector(2)

	ScanHeadSpecificationStart(b)
	ScanHeadSpecificationAddTypeStr(b, typeStr)
	ScanHeadSpecificationAddNumberOfCameras(b, 2)
	ScanHeadSpecificationAddNumberOfLasers(b, 1)
	ScanHeadSpecificationAddMinScanPeriodUs(b, 250)
	ScanHeadSpecificationAddMaxScanPeriodUs(b, 1_000_000)
	ScanHeadSpecificationAddCameraPortToId(b, cams)
	ScanHeadSpecificationAddLaserPortToId(b, lasers)
	ScanHeadSpecificationAddConfigurationGroups(b, groups)
	ScanHeadSpecificationAddConfigurationGroupPrimary(b, ConfigurationGroupPrimaryCAMERA)
	ScanHeadSpecificationAddMaxConfigurationGroups(b, 8)
	b.Finish(ScanHeadSpecificationEnd(b))

	s := GetRootAsScanHeadSpecification(b.FinishedBytes(), 0)
	require.Equal(t, "JS-50 WX", string(s.TypeStr()))
	require.Equal(t, uint32(2), s.NumberOfCameras())
	require.Equal(t, uint32(250), s.MinScanPeriodUs())
	require.Equal(t, 2, s.CameraPortToIdLength())
	require.Equal(t, uint32(2), s.CameraPortToId(0))
	require.Equal(t, uint32(1), s.CameraPortToId(1))

	var g ConfigurationGroup
	require.True(t, s.ConfigurationGroups(&g, 1))
	require.Equal(t, uint32(1), g.CameraPort())
	require.Equal(t, uint32(0), g.LaserPort())
}
