package sqlinline

const QInsertDonation = `--sql 9b79c57c-3615-48a2-9d85-3426d5b3f7eb
insert into donations(id, user_id, event_id, amount_cents, payment_method, payment_note, user_name, is_paid, created_at)
values (gen_random_uuid(), $1::text, $2::uuid, $3::bigint, $4::text, $5::text, $6::text, false, now())
returning id, created_at;
`

const donationColumns = `id, user_id, event_id, amount_cents, payment_method, payment_note, user_name, is_paid, created_at`

const QSelectDonationByID = `--sql 7a08e4f6-cb8a-42c4-bd7f-291d6e913edc
select ` + donationColumns + `
from donations
where id = $1::uuid;
`

const QListEventDonations = `--sql 4c1e8b30-9f5d-47a2-8c6e-0b3d72a1f594
select ` + donationColumns + `
from donations
where event_id = $1::uuid
order by created_at;
`

const QListUserEventDonations = `--sql d2f60a97-1e4c-4b38-95d0-7c8b3e2a614f
select ` + donationColumns + `
from donations
where user_id = $1::text and event_id = $2::uuid
order by created_at;
`

const QSetDonationPaid = `--sql 0e7b3c48-6a2d-4f91-b5e0-8d14c9a72635
update donations
set is_paid = $2::boolean
where id = $1::uuid
returning id;
`
